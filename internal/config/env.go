package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/kelseyhightower/envconfig"
)

// Supported Solana clusters.
const (
	ClusterMainnet = "mainnet"
	ClusterDevnet  = "devnet"
	ClusterTestnet = "testnet"
)

// CAIP-2 blockchain ids advertised in the X-Blockchain-Ids header.
var blockchainIDs = map[string]string{
	ClusterMainnet: "solana:5eykt4UsFv8P8NJdTREpY1vzqKqZKvdp",
	ClusterDevnet:  "solana:EtWTRABZaYq6iMfeYKouRu166VU2xqa1",
	ClusterTestnet: "solana:4uhcVJyU9pJkvQyS88uRDiswHXSCkY3z",
}

var defaultRPCURLs = map[string]string{
	ClusterMainnet: rpc.MainNetBeta_RPC,
	ClusterDevnet:  rpc.DevNet_RPC,
	ClusterTestnet: rpc.TestNet_RPC,
}

// Config contains all configuration parameters for the application.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	SolanaCluster    string        `envconfig:"SOLANA_CLUSTER" default:"mainnet"`
	SolanaRPCURL     string        `envconfig:"SOLANA_RPC_URL"` // empty means the cluster's public endpoint
	SolanaRPCTimeout time.Duration `envconfig:"SOLANA_RPC_TIMEOUT" default:"15s"`

	RecipientAddress string `envconfig:"RECIPIENT_ADDRESS" default:"CBDv85peLsVvUzzc64zQjhr5doVCEa3jMxqrqNkPUocg"`
	BeneficiaryName  string `envconfig:"BENEFICIARY_NAME" default:"Abyscuit"`
	ActionIconURL    string `envconfig:"ACTION_ICON_URL" default:"/images/icon.png"`
	ActionVersion    string `envconfig:"ACTION_VERSION" default:"2.4.1"`
	PublicBaseURL    string `envconfig:"PUBLIC_BASE_URL"`

	NATSURL     string `envconfig:"NATS_URL"`
	NATSSubject string `envconfig:"NATS_SUBJECT" default:"donations.built"`

	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// cfg is the global configuration instance
var cfg *Config

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Init loads configuration from environment variables.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// Validate checks values envconfig cannot check on its own.
func (c *Config) Validate() error {
	var errs []error

	if _, ok := blockchainIDs[c.SolanaCluster]; !ok {
		errs = append(errs, fmt.Errorf("SOLANA_CLUSTER must be one of mainnet, devnet, testnet (got %q)", c.SolanaCluster))
	}
	if _, err := solana.PublicKeyFromBase58(c.RecipientAddress); err != nil {
		errs = append(errs, fmt.Errorf("RECIPIENT_ADDRESS is not a valid Solana address: %w", err))
	}
	if c.BeneficiaryName == "" {
		errs = append(errs, errors.New("BENEFICIARY_NAME is required"))
	}
	if c.SolanaRPCTimeout < 0 {
		errs = append(errs, errors.New("SOLANA_RPC_TIMEOUT cannot be negative"))
	}
	if c.NATSURL != "" && c.NATSSubject == "" {
		errs = append(errs, errors.New("NATS_SUBJECT is required when NATS_URL is set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// RPCURL returns the configured RPC endpoint or the cluster's public one.
func (c *Config) RPCURL() string {
	if c.SolanaRPCURL != "" {
		return c.SolanaRPCURL
	}
	return defaultRPCURLs[c.SolanaCluster]
}

// BlockchainID returns the CAIP-2 id of the configured cluster.
func (c *Config) BlockchainID() string {
	return blockchainIDs[c.SolanaCluster]
}

// Recipient returns the donation recipient. Validate guarantees it parses.
func (c *Config) Recipient() solana.PublicKey {
	return solana.MustPublicKeyFromBase58(c.RecipientAddress)
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().RPCURL()
}
