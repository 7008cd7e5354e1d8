package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
)

// Config is the optional pairalign.yaml file. Flags override it.
type Config struct {
	Method  string         `yaml:"method" validate:"oneof=global local"`
	Workers int            `yaml:"workers" validate:"gte=0"`
	Scoring scoring.Config `yaml:"-" validate:"-"`
}

// configFile is the on-disk layout; the scoring section is decoded by
// scoring.ParseConfig.
type configFile struct {
	Config  `yaml:",inline"`
	Scoring yaml.Node `yaml:"scoring"`
}

func defaultConfig() Config {
	return Config{Method: align.Global.String(), Scoring: scoring.DefaultConfig()}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// loadConfig returns the defaults when path is empty.
func loadConfig(path string) (Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	data, err := scoring.ReadConfigFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func parseConfig(data []byte) (Config, error) {
	file := configFile{Config: defaultConfig()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, err
	}
	if err := validate.Struct(file.Config); err != nil {
		return Config{}, err
	}

	cfg := file.Config
	if file.Scoring.Kind == 0 {
		return cfg, nil
	}
	section, err := yaml.Marshal(&file.Scoring)
	if err != nil {
		return Config{}, err
	}
	if cfg.Scoring, err = scoring.ParseConfig(section); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) method() align.Method {
	if c.Method == align.Local.String() {
		return align.Local
	}

	return align.Global
}
