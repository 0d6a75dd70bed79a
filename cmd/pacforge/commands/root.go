// Package commands implements the CLI commands for pacforge.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pacforge/internal/app"
	"go.trai.ch/pacforge/internal/build"
	"go.trai.ch/pacforge/internal/core/domain"
)

// CLI represents the command line interface for pacforge.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetConfigPath(path string)
	SetJSONLogs(enable bool)
	Update(ctx context.Context, bases []string, opts app.UpdateOptions) (*domain.Result, error)
	Serve(ctx context.Context) error
	Workers(ctx context.Context, all bool) ([]domain.Worker, error)
	RemoveWorker(ctx context.Context, identifier string) error
	AddPackages(ctx context.Context, path string) ([]domain.Package, error)
	ListPackages(ctx context.Context) ([]domain.Package, error)
	Events(ctx context.Context, opts app.EventsOptions) ([]domain.Event, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pacforge",
		Short:         "Build and publish the packages of a repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (default \"pacforge.yaml\")")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configPath, _ := cmd.Flags().GetString("config")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.app.SetConfigPath(configPath)
		c.app.SetJSONLogs(jsonLogs)
	}

	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newWorkersCmd())
	rootCmd.AddCommand(c.newPackageCmd())
	rootCmd.AddCommand(c.newEventsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
