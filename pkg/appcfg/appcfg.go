package appcfg

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Language             string `yaml:"language"`  // "en" | "ru"
	LogLevel             string `yaml:"log_level"` // "debug"|"info"|"warn"|"error"
	LogFile              string `yaml:"log_file"`  // optional, may contain {start} and {pid}
	HideSecretsInConsole bool   `yaml:"hide_secrets_in_console"`
	FoundDir             string `yaml:"found_dir"`

	ChunkSize   int    `yaml:"chunk_size"`
	Scheme      string `yaml:"scheme"`  // "p2wpkh" | "evm"
	Network     string `yaml:"network"` // chaincfg name, ignored for evm
	DeriveCount int    `yaml:"derive_count"`
}

// Default is the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open app config %q: %w", path, err)
	}
	defer f.Close()

	var c Config
	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode app yaml %q: %w", path, err)
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.FoundDir == "" {
		c.FoundDir = "logs"
	}
	if c.ChunkSize == 0 {
		c.ChunkSize = 100
	}
	if c.Scheme == "" {
		c.Scheme = "p2wpkh"
	}
	if c.Network == "" {
		c.Network = "mainnet"
	}
	if c.DeriveCount == 0 {
		c.DeriveCount = 24
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be > 0, got %d", c.ChunkSize)
	}
	if c.DeriveCount < 1 || int64(c.DeriveCount) > 1<<31 {
		return fmt.Errorf("derive_count must be in [1, 2^31], got %d", c.DeriveCount)
	}
	switch strings.ToLower(c.Scheme) {
	case "p2wpkh", "evm":
	default:
		return fmt.Errorf("scheme must be one of: p2wpkh, evm (got %q)", c.Scheme)
	}
	// evm ignores network
	if strings.EqualFold(c.Scheme, "p2wpkh") {
		switch strings.ToLower(strings.TrimSpace(c.Network)) {
		case "", "mainnet", "bitcoin", "testnet3", "regtest", "signet", "simnet":
		default:
			return fmt.Errorf("network must be one of: mainnet, testnet3, regtest, signet, simnet (got %q)", c.Network)
		}
	}
	switch strings.ToLower(c.Language) {
	case "en", "ru":
	default:
		return fmt.Errorf("language must be one of: en, ru (got %q)", c.Language)
	}
	return nil
}
