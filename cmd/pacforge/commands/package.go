package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pacforge/internal/ui/output"
	"go.trai.ch/pacforge/internal/ui/style"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Manage the package catalog",
	}
	cmd.AddCommand(c.newPackageAddCmd())
	cmd.AddCommand(c.newPackageListCmd())
	return cmd
}

func (c *CLI) newPackageAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file.json>",
		Short: "Add package definitions to the catalog",
		Long:  "Add package definitions to the catalog. The file holds one package object or an array of them.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packages, err := c.app.AddPackages(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			for _, pkg := range packages {
				_ = output.Success(out, pkg.Base+" "+pkg.Version)
			}
			return nil
		},
	}
}

func (c *CLI) newPackageListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the package catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			packages, err := c.app.ListPackages(cmd.Context())
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			for _, pkg := range packages {
				line := style.Bold(pkg.Base) + " " + pkg.Version
				if pkg.Packager != "" {
					line += " (" + pkg.Packager + ")"
				}
				_ = output.Item(out, line)
			}
			return nil
		},
	}
}
