package utils

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

const (
	DefaultURL        = "https://danbooru.donmai.us"
	DefaultOutput     = "output"
	DefaultPageLimit  = 1000
	DefaultExtensions = ".png,.jpg"
	DefaultUserAgent  = "danbooru-scraper-go/1.0"
	DefaultTimeout    = 60 * time.Second
	DefaultLogDir     = "logs"
)

// Config is the optional YAML file. Zero values mean "not set".
type Config struct {
	URL        string        `yaml:"url"`
	Username   string        `yaml:"username"`
	ApiKey     string        `yaml:"api_key"`
	Output     string        `yaml:"output"`
	PageLimit  int           `yaml:"page_limit"`
	Limit      int           `yaml:"limit"`
	Extensions string        `yaml:"extensions"`
	UserAgent  string        `yaml:"user_agent"`
	Timeout    time.Duration `yaml:"timeout"`
	LogDir     string        `yaml:"log_dir"`
	Debug      bool          `yaml:"debug"`
}

func ParseConfig(configFile string) (*Config, error) {
	config := &Config{}
	var dat []byte
	var err error
	if dat, err = os.ReadFile(configFile); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err = yaml.Unmarshal(dat, config); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	return config, nil
}

// Options is the resolved run configuration, built once at startup.
type Options struct {
	Tags        string
	Output      string
	URL         string
	PageLimit   int
	Limit       int
	Username    string
	ApiKey      string
	MaxFileSize bool
	Extensions  string
	SaveTags    bool
	TagsOnly    bool
	UserAgent   string
	Timeout     time.Duration
	LogDir      string
	Debug       bool
}

func DefaultOptions() Options {
	return Options{
		Output:     DefaultOutput,
		URL:        DefaultURL,
		PageLimit:  DefaultPageLimit,
		Extensions: DefaultExtensions,
		UserAgent:  DefaultUserAgent,
		Timeout:    DefaultTimeout,
		LogDir:     DefaultLogDir,
	}
}

// ApplyConfig copies every value set in the file over the current options.
func (o *Options) ApplyConfig(c *Config) {
	if c == nil {
		return
	}
	setString(&o.URL, c.URL)
	setString(&o.Username, c.Username)
	setString(&o.ApiKey, c.ApiKey)
	setString(&o.Output, c.Output)
	setString(&o.Extensions, c.Extensions)
	setString(&o.UserAgent, c.UserAgent)
	setString(&o.LogDir, c.LogDir)
	if c.PageLimit != 0 {
		o.PageLimit = c.PageLimit
	}
	if c.Limit != 0 {
		o.Limit = c.Limit
	}
	if c.Timeout != 0 {
		o.Timeout = c.Timeout
	}
	o.Debug = o.Debug || c.Debug
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// SetPageLimit parses a page limit coming from the command line.
func (o *Options) SetPageLimit(value string) error {
	return setPositiveInt(&o.PageLimit, "page_limit", value)
}

// SetLimit parses a per-page post limit coming from the command line.
func (o *Options) SetLimit(value string) error {
	return setPositiveInt(&o.Limit, "limit", value)
}

func setPositiveInt(dst *int, name, value string) error {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return NewConfigurationError("--" + name + " must be a positive integer, got " + strconv.Quote(value))
	}
	*dst = n
	return nil
}

// Validate checks the options and applies the implications between flags.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.Tags) == "" {
		return NewConfigurationError("--tags is required")
	}
	if o.PageLimit < 1 {
		return NewConfigurationError("page_limit must be a positive integer")
	}
	if o.Limit < 0 {
		return NewConfigurationError("limit must not be negative")
	}
	if o.Output == "" {
		return NewConfigurationError("output directory must not be empty")
	}
	if strings.TrimSpace(o.Extensions) == "" {
		return NewConfigurationError("extensions must not be empty")
	}
	if o.TagsOnly {
		o.SaveTags = true
	}
	return nil
}
