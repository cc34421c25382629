package amion

import "fmt"

// Config defines the connection to the Amion schedule export.
type Config struct {
	// Mode selects the source: "client" fetches from BaseURL, "mock"
	// serves the fixture at FixturePath over a local HTTP server.
	Mode string `json:"mode"`
	// BaseURL is the report CGI endpoint.
	BaseURL string `json:"base_url"`
	// Passkey is the department passkey; it is passed through to Amion
	// and never logged.
	Passkey string `json:"passkey"`
	// Years are the academic years to scan, e.g. ["AY23","AY24"].
	Years []string `json:"years"`
	// TimeoutSeconds bounds a single export fetch.
	TimeoutSeconds int `json:"timeout_seconds"`
	// MockAddress and FixturePath configure mock mode.
	MockAddress string `json:"mock_address"`
	FixturePath string `json:"fixture_path"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Mode == "" {
		c.Mode = "client"
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://www.amion.com/cgi-bin/ocs"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 60
	}
	if len(c.Years) == 0 {
		c.Years = []string{"AY23", "AY24", "AY25"}
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	switch c.Mode {
	case "client":
		if c.Passkey == "" {
			return fmt.Errorf("amion passkey is required in client mode")
		}
	case "mock":
		if c.FixturePath == "" {
			return fmt.Errorf("fixture_path is required in mock mode")
		}
	default:
		return fmt.Errorf("unknown amion mode %s", c.Mode)
	}
	return nil
}
