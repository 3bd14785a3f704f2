package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"chore-app/config"
	"chore-app/internal/repository"
	"chore-app/internal/seed"
	"chore-app/internal/usecase"
	"chore-app/internal/usecase/domain"
	"chore-app/pkg/logger"

	"github.com/spf13/cobra"
)

const seedTimeout = 30 * time.Second

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Provision the household from a YAML file",
		Long: `Upserts the members and chores listed in the file and creates the
current-cycle assignment of every chore that names an assignee and has none
yet. Existing assignments are kept. Storage settings come from the same
environment as the server.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			household, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Logging.Level)
			if err != nil {
				return err
			}
			loc, err := cfg.Calendar.Location()
			if err != nil {
				return err
			}

			repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
			if err != nil {
				return err
			}
			if err := repo.OnStart(ctx); err != nil {
				return fmt.Errorf("start repository: %w", err)
			}
			defer func() { _ = repo.OnStop(context.Background()) }()

			uc := usecase.New(log, ctx, repo, seedTimeout, domain.WithLocation(loc))
			res, err := uc.Provision(ctx, household)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "members: %d\nchores: %d\nassigned: %d\nkept: %d\n",
				res.Members, res.Chores, res.Assigned, res.Kept)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "household.yaml", "Household YAML file")
	return cmd
}
