package main

import (
	"fmt"

	"github.com/deppfellow/anime-service/internal/config"
	"github.com/deppfellow/anime-service/internal/logger"
	"github.com/deppfellow/anime-service/internal/model/user"
	"github.com/deppfellow/anime-service/internal/repository"
	"github.com/deppfellow/anime-service/internal/server"
	"github.com/deppfellow/anime-service/internal/service"
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage API credentials",
	}
	cmd.AddCommand(newUserAddCmd())
	return cmd
}

// newUserAddCmd provisions a credential. The HTTP API has no user endpoints.
func newUserAddCmd() *cobra.Command {
	var payload user.CreateUserPayload

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user with a bcrypt-encoded password",
		Example: "  anime user add --username admin --password admin123 " +
			"--authorities ROLE_ADMIN,ROLE_USER",
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload.Name == "" {
				payload.Name = payload.Username
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			log := logger.NewLogger(cfg.Observability)
			srv, err := server.New(cfg, &log, &logger.LoggerService{})
			if err != nil {
				return err
			}
			defer srv.Shutdown(cmd.Context())

			services, err := service.NewService(srv, repository.NewRepositories(srv))
			if err != nil {
				return err
			}

			created, err := services.Auth.CreateUser(log.WithContext(cmd.Context()), payload)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id %d) with %s\n",
				created.Username, created.ID, created.Authorities)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&payload.Username, "username", "", "login name (required)")
	flags.StringVar(&payload.Password, "password", "", "raw password, at least 6 characters (required)")
	flags.StringVar(&payload.Name, "name", "", "display name, defaults to the username")
	flags.StringVar(&payload.Authorities, "authorities", user.RoleUser, "comma-separated roles")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
