package utils

// ConfigurationError reports invalid user-supplied settings. It is raised
// before any network call is made.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

func NewConfigurationError(reason string) error {
	return &ConfigurationError{Reason: reason}
}
