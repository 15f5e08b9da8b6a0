package danbooru

// Post is one record of /posts.json. Any field may be missing depending on the
// post and on the permissions of the requesting account.
type Post struct {
	ID           int     `json:"id"`
	MD5          *string `json:"md5,omitempty"`
	FileExt      *string `json:"file_ext,omitempty"`
	Rating       *string `json:"rating,omitempty"`
	FileURL      *string `json:"file_url,omitempty"`
	LargeFileURL *string `json:"large_file_url,omitempty"`
	TagString    *string `json:"tag_string,omitempty"`
}

func optional(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	return *s, true
}

func (p *Post) PrimaryURL() (string, bool) {
	return optional(p.FileURL)
}

func (p *Post) LargeURL() (string, bool) {
	return optional(p.LargeFileURL)
}

func (p *Post) Tags() (string, bool) {
	return optional(p.TagString)
}

type failureResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}
