package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nothingdao/solana-discord-paywall/api"
	"github.com/nothingdao/solana-discord-paywall/config"
	"github.com/nothingdao/solana-discord-paywall/database"
	"github.com/nothingdao/solana-discord-paywall/discord"
	"github.com/nothingdao/solana-discord-paywall/ledger"
	"github.com/nothingdao/solana-discord-paywall/repository"
	"github.com/nothingdao/solana-discord-paywall/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting payment bridge...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established")

	// Initialize ledger client
	ledgerClient := ledger.NewClient(cfg.SolanaRPCURL)
	if err := ledgerClient.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach Solana RPC endpoint: %w", err)
	}
	log.Info("Solana RPC endpoint reachable")

	// Initialize Discord client with explicit lifecycle
	discordClient, err := discord.New(cfg.DiscordBotToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord client: %w", err)
	}
	if err := discordClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer func() {
		if err := discordClient.Close(); err != nil {
			log.WithError(err).Error("Error closing Discord session")
		}
	}()

	// Initialize services
	uowFactory := repository.NewUnitOfWorkFactory(db)
	paymentService := service.NewPaymentService(uowFactory, ledgerClient, discordClient)

	// Initialize HTTP server
	interactionHandler, err := api.NewInteractionHandler(cfg.DiscordPublicKey)
	if err != nil {
		return fmt.Errorf("failed to create interaction handler: %w", err)
	}
	paymentHandler := api.NewPaymentHandler(paymentService)
	server := api.NewServer(cfg.ListenAddr, interactionHandler, paymentHandler)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	log.WithField("environment", cfg.Environment).Info("Payment bridge is running")

	select {
	case err := <-serverErr:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Error shutting down HTTP server")
	}

	log.Info("Shutdown completed")
	return nil
}
