package accountkit

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// AccountKit API hosts per environment.
const (
	hostProd = "https://api.collab.land"
	hostQA   = "https://api-qa.collab.land"
)

var validate = validator.New()

// Config is the resolved client configuration. It is built once by [New],
// never mutated afterwards, and shared read-only by both versioned clients.
type Config struct {
	APIKey      string `validate:"required"`
	Environment Environment
	BaseURL     string `validate:"omitempty,url"`
	Timeout     time.Duration
	Debug       bool
	Headers     map[string]string
}

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return configError(verrs[0])
		}
		return err
	}
	return nil
}

func configError(fe validator.FieldError) *ConfigError {
	switch fe.Field() {
	case "APIKey":
		return &ConfigError{Field: "apiKey", Reason: "must not be empty"}
	case "BaseURL":
		return &ConfigError{Field: "baseUrl", Reason: "must be a valid URL"}
	default:
		return &ConfigError{Field: fe.Field(), Reason: fmt.Sprintf("failed %q validation", fe.Tag())}
	}
}

// resolveBaseURL picks the host once at construction. An explicit override
// wins verbatim regardless of environment; otherwise the environment must be
// one of the two known values.
func (c *Config) resolveBaseURL() (string, error) {
	if c.BaseURL != "" {
		return c.BaseURL, nil
	}

	switch c.Environment {
	case EnvironmentProd:
		return hostProd, nil
	case EnvironmentQA:
		return hostQA, nil
	}

	return "", &ConfigError{
		Field:  "environment",
		Reason: fmt.Sprintf("unrecognized value %q (want %q or %q)", c.Environment, EnvironmentProd, EnvironmentQA),
	}
}

// Client is the entry point of the SDK. It binds one configuration to the
// two versioned sub-clients. Each sub-client owns its own transport; they
// share no connection state. A Client is safe for concurrent use.
type Client struct {
	V1 *V1Client
	V2 *V2Client

	cfg *Config
}

// Config returns a copy of the resolved configuration.
func (c *Client) Config() Config {
	cfg := *c.cfg
	cfg.Headers = make(map[string]string, len(c.cfg.Headers))
	for k, v := range c.cfg.Headers {
		cfg.Headers[k] = v
	}
	return cfg
}

// New builds a client for the given API key and environment. Configuration
// problems surface here as [*ConfigError], before any request is attempted.
func New(apiKey string, env Environment, opts ...Option) (*Client, error) {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	cfg := &Config{
		APIKey:      apiKey,
		Environment: env,
		BaseURL:     options.baseURL,
		Timeout:     options.timeout,
		Debug:       options.debug,
		Headers:     options.requestHeaders,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	baseURL, err := cfg.resolveBaseURL()
	if err != nil {
		return nil, err
	}

	extraValues := make([]string, 0, len(cfg.Headers))
	for k, v := range cfg.Headers {
		// Content-Type and Accept are fixed defaults, not caller secrets.
		if strings.EqualFold(k, "Content-Type") || strings.EqualFold(k, "Accept") {
			continue
		}
		extraValues = append(extraValues, v)
	}
	red := newRedactor(os.Environ(), extraValues)

	defaultHeaders := make(map[string]string, len(cfg.Headers)+1)
	for k, v := range cfg.Headers {
		defaultHeaders[k] = v
	}
	defaultHeaders[headerAPIKey] = cfg.APIKey

	newT := func() *transport {
		return newTransport(baseURL, cfg.Timeout, defaultHeaders, options.requestLogger, cfg.Debug, red)
	}

	return &Client{
		V1:  newV1Client(newT()),
		V2:  newV2Client(newT()),
		cfg: cfg,
	}, nil
}
