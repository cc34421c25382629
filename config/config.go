package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/medrota/rotagap/amion"
	"github.com/medrota/rotagap/core/metrics"
	"github.com/medrota/rotagap/core/recurrence"
	"github.com/medrota/rotagap/notify"
)

type Config struct {
	Amion    amion.Config      `json:"amion"`
	Detector recurrence.Params `json:"detector"`
	Exclude  ExcludeConfig     `json:"exclude"`
	API      APIConfig         `json:"api"`
	Metrics  metrics.Config    `json:"metrics"`
	Notify   notify.Config     `json:"notify"`
}

// ExcludeConfig lists the banned assignment terms. An empty list falls back
// to the built-in defaults.
type ExcludeConfig struct {
	Terms []string `json:"terms"`
}

// APIConfig defines the JSON API server settings.
type APIConfig struct {
	Enabled bool   `json:"enabled"`
	Address string `json:"address"`
}

// SetDefaults applies sane defaults.
func (c *APIConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides. The "__" delimiter nests the keys,
	// e.g. RG_AMION__PASSKEY overrides amion.passkey.
	if err := k.Load(env.Provider("RG_", "__", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "rg_")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Amion.SetDefaults()
	cfg.Detector.SetDefaults()
	cfg.API.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Notify.SetDefaults()
	if err := cfg.Amion.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Notify.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
