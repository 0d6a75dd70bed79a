package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/pacforge/internal/app"
	"go.trai.ch/pacforge/internal/core/domain"
	"go.trai.ch/pacforge/internal/ui/output"
)

func (c *CLI) newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List recorded package events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			event, _ := cmd.Flags().GetString("event")
			base, _ := cmd.Flags().GetString("package")
			limit, _ := cmd.Flags().GetInt("limit")

			events, err := c.app.Events(cmd.Context(), app.EventsOptions{
				Event:    event,
				ObjectID: base,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			for _, e := range events {
				line := e.CreatedAt.Format(time.DateTime) + " " + e.ObjectID + " " + e.Event
				if e.Message != "" {
					line += ": " + e.Message
				}
				if e.Event == domain.EventPackageUpdateFailed {
					_ = output.Failure(out, line)
					continue
				}
				_ = output.Success(out, line)
			}
			return nil
		},
	}
	cmd.Flags().String("event", "", "Only list events of this type")
	cmd.Flags().StringP("package", "p", "", "Only list events of this package base")
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of events, 0 for all")
	return cmd
}
