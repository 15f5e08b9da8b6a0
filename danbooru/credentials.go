package danbooru

import "danbooru-scraper-go/utils"

type Credentials struct {
	Login  string
	APIKey string
}

// NewCredentials pairs a login with an api key. Both empty means anonymous
// access and returns nil.
func NewCredentials(login, apiKey string) (*Credentials, error) {
	if login == "" && apiKey == "" {
		return nil, nil
	}
	if login == "" || apiKey == "" {
		return nil, utils.NewConfigurationError("You must pass both a --username and an --api_key in order to log on")
	}
	return &Credentials{Login: login, APIKey: apiKey}, nil
}

func (c *Credentials) queryParams() map[string]string {
	return map[string]string{
		"login":   c.Login,
		"api_key": c.APIKey,
	}
}
