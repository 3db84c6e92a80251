package cli

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/mindpulse-backend/internal/platform/envutil"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

// NewRootCmd builds the "mindpulse" command. Running it bare starts the API server.
func NewRootCmd() *cobra.Command {
	var logMode string

	root := &cobra.Command{
		Use:           "mindpulse",
		Short:         "Mental-health tracking dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logMode, "log-mode", envutil.String("LOG_MODE", "development"), "logger mode: development, production or test")

	newLogger := func() (*logger.Logger, error) {
		return logger.New(logMode)
	}

	serve := newServeCmd(newLogger)
	root.RunE = serve.RunE
	root.AddCommand(serve, newSampleDataCmd(newLogger))
	return root
}
