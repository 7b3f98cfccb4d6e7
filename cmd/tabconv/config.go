package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// config holds defaults for the convert command. Values are layered: an
// optional YAML file, then .env and the environment, then flags.
type config struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Border   string `yaml:"border"`
	TypeName string `yaml:"type_name"`
	Root     string `yaml:"root"`
	Item     string `yaml:"item"`
	Sheet    string `yaml:"sheet"`
}

var envKeys = map[string]func(*config) *string{
	"TABCONV_FROM":      func(c *config) *string { return &c.From },
	"TABCONV_TO":        func(c *config) *string { return &c.To },
	"TABCONV_BORDER":    func(c *config) *string { return &c.Border },
	"TABCONV_TYPE_NAME": func(c *config) *string { return &c.TypeName },
	"TABCONV_ROOT":      func(c *config) *string { return &c.Root },
	"TABCONV_ITEM":      func(c *config) *string { return &c.Item },
	"TABCONV_SHEET":     func(c *config) *string { return &c.Sheet },
}

func defaultConfig() config {
	return config{To: "json", Border: "rounded"}
}

// loadConfig reads path (if not empty) and then the environment. A missing
// .env file is not an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	for key, field := range envKeys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*field(&cfg) = v
		}
	}
	return cfg, nil
}
