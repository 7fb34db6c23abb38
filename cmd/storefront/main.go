package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"storefront/internal/cli"
	"storefront/internal/modules/auth"
	"storefront/internal/modules/order"
	"storefront/internal/modules/product"
	"storefront/internal/modules/store"
	"storefront/internal/modules/supply"
	"storefront/internal/modules/user"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Role-gated retail operations console over Postgres",
	Long: `storefront is an interactive console for a shared retail database.

Customers browse nearby stores and place orders; managers replenish
inventory, audit product changes, and inspect sales; admins override any
record. Store and warehouse selection ranks candidates by distance from the
principal's registered location.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	fmt.Print("Connecting to database...")
	if err := db.Ping(); err != nil {
		fmt.Println()
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	fmt.Println("Done")

	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo, logger)
	storeService := store.NewService(store.NewPostgresRepository(db))
	productService := product.NewService(product.NewPostgresRepository(db))
	orderService := order.NewService(order.NewPostgresRepository(db))
	supplyService := supply.NewService(supply.NewPostgresRepository(db))

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	console := cli.New(prompter, logger,
		authService, userService, storeService, productService, orderService, supplyService)

	err = console.Run(cmd.Context())
	fmt.Println("Bye!")
	return err
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
