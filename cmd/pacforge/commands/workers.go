package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pacforge/internal/ui/output"
	"go.trai.ch/pacforge/internal/ui/style"
)

func (c *CLI) newWorkersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workers",
		Short: "Inspect and manage build workers",
	}
	cmd.AddCommand(c.newWorkersListCmd())
	cmd.AddCommand(c.newWorkersRemoveCmd())
	return cmd
}

func (c *CLI) newWorkersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")

			workers, err := c.app.Workers(cmd.Context(), all)
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			for _, worker := range workers {
				_ = output.Item(out, style.Bold(worker.Identifier)+" "+worker.Address)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("all", "a", false, "List every worker ever registered with this instance")
	return cmd
}

func (c *CLI) newWorkersRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <identifier>",
		Short: "Remove a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RemoveWorker(cmd.Context(), args[0])
		},
	}
}
