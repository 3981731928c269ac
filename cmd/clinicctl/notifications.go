package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zatekoja/hivclinic/pkg/config"
)

func notificationsCmd(a **app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Follow notifications published by other clinicctl sessions",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "watch",
		Short: "Print notifications until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (*a).bus == nil {
				return fmt.Errorf("notifications are only shared when NOTIFY_BACKEND=%s", config.NotifyBackendRedis)
			}
			ch, err := (*a).bus.Subscribe(cmd.Context())
			if err != nil {
				return err
			}
			for note := range ch {
				fmt.Fprintf((*a).out, "%s [%s] %s: %s\n",
					note.Time.Local().Format("15:04:05"), note.Level, note.Title, note.Message)
			}
			return nil
		},
	})
	return cmd
}
