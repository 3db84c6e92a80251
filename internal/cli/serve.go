package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/mindpulse-backend/internal/app"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
	"github.com/yungbote/mindpulse-backend/internal/platform/shutdown"
)

func newServeCmd(newLogger func() (*logger.Logger, error)) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			cfg := app.LoadConfig(log)
			if port != "" {
				cfg.Port = port
			}

			ctx, stop := shutdown.NotifyContext(context.Background())
			defer stop()

			a, err := app.New(ctx, log, cfg)
			if err != nil {
				log.Error("Failed to initialize app", "error", err)
				return err
			}
			defer a.Close()

			a.Start()
			if err := a.Run(ctx); err != nil {
				log.Error("Server exited with error", "error", err)
				return err
			}
			log.Info("Server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}
