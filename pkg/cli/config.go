package cli

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hashgraph-online/agent-kit-go/pkg/agentkit"
)

// Config is the agentkit CLI configuration file. Every field is optional;
// command line flags override file values, and operator credentials always
// come from the environment.
type Config struct {
	// Network is the Hedera network name (mainnet, testnet, previewnet).
	Network string `yaml:"network"`

	// AccountID is the connected account the agent acts for.
	AccountID string `yaml:"account_id"`

	// PublicKey is the connected account's public key, used as the default
	// key for tools that accept one.
	PublicKey string `yaml:"public_key"`

	// Mode selects transaction dispatch: autonomous or returnBytes.
	Mode string `yaml:"mode"`

	// MirrorURL overrides the network's default mirror node REST endpoint.
	MirrorURL string `yaml:"mirror_url"`

	// Tools is a method allowlist. Empty means every registered tool.
	Tools []string `yaml:"tools"`
}

// LoadConfig reads a YAML configuration file. An empty path yields the zero
// configuration; unknown keys in the file are an error.
func LoadConfig(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Config{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	decoder := yaml.NewDecoder(strings.NewReader(string(raw)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

// AgentMode maps the configured mode string onto the kit's mode constants.
func (c Config) AgentMode() (agentkit.AgentMode, error) {
	switch strings.TrimSpace(c.Mode) {
	case "", "autonomous":
		return agentkit.AgentModeAutonomous, nil
	case "returnBytes", "return_bytes", "return-bytes":
		return agentkit.AgentModeReturnBytes, nil
	default:
		return "", fmt.Errorf("unsupported mode %q: use autonomous or returnBytes", c.Mode)
	}
}

// merge overlays non-empty flag values onto the file configuration.
func (c Config) merge(flags globalFlags) Config {
	if flags.Network != "" {
		c.Network = flags.Network
	}
	if flags.AccountID != "" {
		c.AccountID = flags.AccountID
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.MirrorURL != "" {
		c.MirrorURL = flags.MirrorURL
	}
	if len(flags.Tools) > 0 {
		c.Tools = flags.Tools
	}
	return c
}
