// Package config implements the CLI's persisted configuration: a single
// flat JSON document merged over built-in defaults, read fresh on every
// invocation and written back as a whole-file replacement.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"token-extensions-cli/internal/log"
)

// DefaultPath is the configuration file location, relative to the working
// directory.
const DefaultPath = "token-cli.config.json"

// Recognized cluster names.
const (
	NetworkDevnet      = "devnet"
	NetworkTestnet     = "testnet"
	NetworkMainnetBeta = "mainnet-beta"
	NetworkLocalnet    = "localnet"
)

var clusterRPC = map[string]string{
	NetworkDevnet:      "https://api.devnet.solana.com",
	NetworkTestnet:     "https://api.testnet.solana.com",
	NetworkMainnetBeta: "https://api.mainnet-beta.solana.com",
	NetworkLocalnet:    "http://127.0.0.1:8899",
}

// Config is the flat option set. Unknown keys in the persisted document are
// ignored on load; every field has a built-in default.
type Config struct {
	Network string `json:"network"`
	RPCUrl  string `json:"rpcUrl"`

	WalletPath string `json:"walletPath"`
	OutputDir  string `json:"outputDir"`

	DefaultDecimals       uint8   `json:"defaultDecimals"`
	DefaultFeeBasisPoints uint16  `json:"defaultFeeBasisPoints"`
	DefaultMaxFee         uint64  `json:"defaultMaxFee"`
	DefaultInterestRate   int16   `json:"defaultInterestRate"`
	DefaultAmount         uint64  `json:"defaultAmount"`

	ConfirmTransactions bool `json:"confirmTransactions"`
	SaveTokenInfo       bool `json:"saveTokenInfo"`
	ShowDetailedOutput  bool `json:"showDetailedOutput"`
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Network:               NetworkDevnet,
		RPCUrl:                "",
		WalletPath:            filepath.Join(home, ".config", "solana", "id.json"),
		OutputDir:             "tokens",
		DefaultDecimals:       9,
		DefaultFeeBasisPoints: 50,
		DefaultMaxFee:         5000,
		DefaultInterestRate:   200,
		DefaultAmount:         1000,
		ConfirmTransactions:   true,
		SaveTokenInfo:         true,
		ShowDetailedOutput:    false,
	}
}

// Load returns defaults merged with any parseable persisted document at
// path. A missing or malformed document degrades to defaults; malformed
// documents additionally log a warning. Load never fails.
func Load(path string) *Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("cannot read config, using defaults")
		}
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("malformed config, using defaults")
		return Default()
	}

	if _, ok := clusterRPC[cfg.Network]; !ok {
		log.Warn().Str("network", cfg.Network).Msg("unknown network in config, using devnet")
		cfg.Network = NetworkDevnet
	}
	return cfg
}

// Save writes the full merged document to path as a whole-file replacement
// (temp file + rename).
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

// RPCEndpoint returns the HTTP endpoint for network calls. An explicit
// rpcUrl overrides the cluster default.
func (c *Config) RPCEndpoint() string {
	if c.RPCUrl != "" {
		return c.RPCUrl
	}
	return clusterRPC[c.Network]
}

// WSEndpoint derives the WebSocket endpoint from the HTTP one.
func (c *Config) WSEndpoint() string {
	url := c.RPCEndpoint()
	switch {
	case strings.HasPrefix(url, "https://"):
		url = "wss://" + strings.TrimPrefix(url, "https://")
	case strings.HasPrefix(url, "http://"):
		url = "ws://" + strings.TrimPrefix(url, "http://")
	}
	// Local validators serve WS on RPC port + 1.
	if c.RPCUrl == "" && c.Network == NetworkLocalnet {
		url = strings.Replace(url, ":8899", ":8900", 1)
	}
	return url
}

// ValidNetwork reports whether name is a recognized cluster.
func ValidNetwork(name string) bool {
	_, ok := clusterRPC[name]
	return ok
}

// Networks lists the recognized cluster names.
func Networks() []string {
	return []string{NetworkDevnet, NetworkTestnet, NetworkMainnetBeta, NetworkLocalnet}
}

// Set assigns a recognized option by its JSON key, parsing value per the
// key's type. Unknown keys and unparseable values are errors.
func (c *Config) Set(key, value string) error {
	switch key {
	case "network":
		if !ValidNetwork(value) {
			return fmt.Errorf("invalid network %q (one of: %s)", value, strings.Join(Networks(), ", "))
		}
		c.Network = value
	case "rpcUrl":
		c.RPCUrl = value
	case "walletPath":
		c.WalletPath = value
	case "outputDir":
		c.OutputDir = value
	case "defaultDecimals":
		v, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return fmt.Errorf("invalid defaultDecimals %q: %w", value, err)
		}
		c.DefaultDecimals = uint8(v)
	case "defaultFeeBasisPoints":
		v, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid defaultFeeBasisPoints %q: %w", value, err)
		}
		c.DefaultFeeBasisPoints = uint16(v)
	case "defaultMaxFee":
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid defaultMaxFee %q: %w", value, err)
		}
		c.DefaultMaxFee = v
	case "defaultInterestRate":
		v, err := strconv.ParseInt(value, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid defaultInterestRate %q: %w", value, err)
		}
		c.DefaultInterestRate = int16(v)
	case "defaultAmount":
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid defaultAmount %q: %w", value, err)
		}
		c.DefaultAmount = v
	case "confirmTransactions", "saveTokenInfo", "showDetailedOutput":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		switch key {
		case "confirmTransactions":
			c.ConfirmTransactions = v
		case "saveTokenInfo":
			c.SaveTokenInfo = v
		case "showDetailedOutput":
			c.ShowDetailedOutput = v
		}
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}
