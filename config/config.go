package config

import (
	"fmt"
	"os"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordPublicKey string
	DiscordBotToken  string

	// Solana configuration
	SolanaRPCURL string

	// Database configuration
	DatabaseURL string

	// HTTP server configuration
	ListenAddr string

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordPublicKey: os.Getenv("DISCORD_PUBLIC_KEY"),
		DiscordBotToken:  os.Getenv("DISCORD_BOT_TOKEN"),

		// Solana
		SolanaRPCURL: os.Getenv("SOLANA_RPC_URL"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Server default
		ListenAddr: ":8080",

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		config.ListenAddr = addr
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks that required configuration is present
func (c *Config) validate() error {
	if c.DiscordBotToken == "" {
		return fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}
	if c.SolanaRPCURL == "" {
		return fmt.Errorf("SOLANA_RPC_URL is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}
