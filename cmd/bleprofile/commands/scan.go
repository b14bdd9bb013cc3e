package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bleprofile/internal/console"
	"bleprofile/internal/domain"
	"bleprofile/internal/session"
)

func scanCmd() *cobra.Command {
	var (
		duration       time.Duration
		replayPath     string
		replayInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan for devices, pick one and append its profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("duration") {
				if duration <= 0 {
					return fmt.Errorf("--duration must be positive")
				}
				appCtx.Config.ScanDuration = duration
			}
			out := cmd.OutOrStdout()

			source, err := appCtx.Source(replayPath, replayInterval)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "--- bleprofile: BLE profile builder ---")
			fmt.Fprintf(out, "[template] Service UUID: %s\n", appCtx.Config.Template.ServiceUUID)
			fmt.Fprintf(out, "--- Scanning for %s ---\n", appCtx.Config.ScanDuration)

			sess := appCtx.NewSession(source, console.NewPrompter(cmd.InOrStdin(), out),
				func(pos int, d domain.DiscoveredDevice) {
					fmt.Fprintf(out, "[found #%02d] %s (RSSI: %d dBm)\n", pos, d.Name, d.RSSI)
					fmt.Fprintf(out, "  address (hex): %s\n", d.AddressHex())
				})

			res, err := sess.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(out, "\nInterrupted. Nothing was saved.")
			}
			if err != nil {
				return err
			}

			switch res.Status {
			case session.StatusNoDevices:
				fmt.Fprintf(out, "\nNo devices discovered within %s.\n", appCtx.Config.ScanDuration)
			case session.StatusInvalidSelection:
				fmt.Fprintln(out, "Invalid selection. Nothing was saved.")
			case session.StatusSaved:
				fmt.Fprintf(out, "\n=> Selected: %s (%s)\n", res.Device.Name, res.Device.AddressHex())
				fmt.Fprintf(out, "Saved new profile to %s\n", appCtx.Profiles.Path())
				fmt.Fprintf(out, "Profile name: %s\n", res.Profile.Name)
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&duration, "duration", "d", session.DefaultScanDuration, "scan window")
	cmd.Flags().StringVar(&replayPath, "replay", "", "replay advertisements from a capture file instead of the radio")
	cmd.Flags().DurationVar(&replayInterval, "replay-interval", 0, "delay between replayed advertisements")
	return cmd
}
