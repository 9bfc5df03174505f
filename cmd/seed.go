package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"painterbook/config"
	"painterbook/database/seed"
	"painterbook/utils"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with the demo painters and a sample booking",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := utils.GetLogger()
			defer logger.Sync()

			if config.UseMemoryStore() {
				logger.Warn("STORE_DRIVER=memory, seeded data will not outlive this command")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			s, err := openStores(ctx, logger)
			if err != nil {
				return err
			}
			defer s.Close(context.Background())

			return seed.Run(ctx, s.Availability, s.Bookings, time.Now(), logger)
		},
	}
}
