package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zatekoja/hivclinic/internal/infrastructure/observability"
	"github.com/zatekoja/hivclinic/pkg/config"
	apperrors "github.com/zatekoja/hivclinic/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var a *app
	root := rootCmd(&a)
	err := root.ExecuteContext(ctx)
	if a != nil {
		a.close()
	}
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, apperrors.DisplayMessage(err))
		}
		os.Exit(1)
	}
}

func rootCmd(a **app) *cobra.Command {
	var (
		envFile string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "clinicctl",
		Short:         "Command-line client for the HIV clinic portal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
				return fmt.Errorf("failed to load %s: %w", envFile, err)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			observability.InitLogger(cfg.OTEL.ServiceName, cfg.App.Env)
			if verbose {
				observability.SetLevel("debug")
			} else {
				observability.SetLevel("info")
			}

			built, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			*a = built
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every API call")

	cmd.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		appointmentsCmd(a),
		blogsCmd(a),
		educationCmd(a),
		dashboardCmd(a),
		staffCmd(a),
		recordsCmd(a),
		plansCmd(a),
		uploadCmd(a),
		notificationsCmd(a),
	)
	return cmd
}
