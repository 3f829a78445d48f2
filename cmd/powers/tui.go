package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/smkun/MarvelPowers/internal/tui"
)

var tuiSession string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive builder",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), true, func(ctx context.Context, a *app) error {
			if tuiSession != "" {
				if err := openSession(ctx, a, tuiSession, false); err != nil {
					return err
				}
			}

			ui, err := tui.New(ctx, &tui.Config{
				Service:  a.service,
				Preset:   a.preset,
				EventBus: a.bus,
			})
			if err != nil {
				return err
			}
			return ui.Run()
		})
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiSession, "session", "", "session to open at start")
}
