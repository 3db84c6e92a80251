package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/mindpulse-backend/internal/data/records"
	"github.com/yungbote/mindpulse-backend/internal/platform/envutil"
	"github.com/yungbote/mindpulse-backend/internal/platform/logger"
)

func newSampleDataCmd(newLogger func() (*logger.Logger, error)) *cobra.Command {
	var path, seed string

	cmd := &cobra.Command{
		Use:   "sample-data",
		Short: "Create the daily-records CSV if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			wrote, err := records.EnsureCSV(log, path, seed)
			if err != nil {
				return err
			}
			if wrote {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", envutil.String("DATA_CSV_PATH", records.DefaultPath), "dataset location")
	cmd.Flags().StringVar(&seed, "seed", envutil.String("DATA_SEED_CSV_PATH", records.DefaultSeedPath), "file copied into place when present")
	return cmd
}
