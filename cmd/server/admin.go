package main

import (
	"fmt"
	"os"

	"assessment-portal/internal/database"
	"assessment-portal/internal/enrich"
	"assessment-portal/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			pool, err := database.Open(cmd.Context(), cfg.DB.Source)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(cmd.Context(), pool); err != nil {
				return err
			}
			log.Info().Msg("migrations applied")
			return nil
		},
	}
}

func newCreateAdminCommand() *cobra.Command {
	var (
		email    string
		name     string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Long:  "Create an admin account. When --password is omitted a random password is generated and printed once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			pool, err := database.Open(cmd.Context(), cfg.DB.Source)
			if err != nil {
				return err
			}
			defer pool.Close()

			store := database.NewStore(pool)
			locator := enrich.NewLocator(cfg.Geo.BaseURL, cfg.Geo.Timeout)
			sessions := service.NewSessionService(store, locator, nil, nil)
			authService := service.NewAuthService(store, sessions, service.TokenConfig{
				Secret: cfg.JWT.Secret,
				Issuer: cfg.JWT.Issuer,
				TTL:    cfg.JWT.TTL,
			})

			admin, plain, err := authService.CreateAdmin(cmd.Context(), service.CreateAdminParams{
				Email:    email,
				Name:     name,
				Password: password,
			})
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}

			fmt.Fprintf(os.Stdout, "created admin %d (%s)\n", admin.ID, admin.Email)
			if password == "" {
				fmt.Fprintf(os.Stdout, "generated password: %s\n", plain)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email address")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Password (generated when empty)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
