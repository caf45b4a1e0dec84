package cmd

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"time-management.com/time-management/internal/bootstrap"
	config "time-management.com/time-management/internal/configs"
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create baseline tags and demo users",
	Long:  "Runs the idempotent provisioning routine and exits",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		if err := bootstrap.Provision(context.Background(), database, cfg.SeedDemoUsers); err != nil {
			return err
		}

		log.Println("provisioning complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(provisionCmd)
}
