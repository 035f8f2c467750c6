// Package commands implements the CLI commands for pipbridge.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pipbridge/internal/adapters/telemetry" //nolint:depguard // --trace installs the span bridge
	"go.trai.ch/pipbridge/internal/app"
	"go.trai.ch/pipbridge/internal/build"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/core/ports"
)

// CLI represents the command line interface for pipbridge.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	shutdownTracing func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Convert(ctx context.Context, target app.Target, opts app.ConvertOptions) error
	Format(ctx context.Context, target app.Target) error
	Lock(ctx context.Context, target app.Target) error
	Verify(ctx context.Context, target app.Target) error
	LockAll(ctx context.Context, dirs []string, opts app.LockAllOptions) error
	Add(ctx context.Context, target app.Target, opts app.AddOptions) error
	Remove(ctx context.Context, target app.Target, opts app.RemoveOptions) error
	Scripts(ctx context.Context, target app.Target) ([]app.Script, error)
	Requirements(ctx context.Context, target app.Target, opts app.RequirementsOptions) (string, error)
	Graph(ctx context.Context, target app.Target) (*domain.DependencyTree, error)
	Watch(ctx context.Context, target app.Target, opts app.WatchOptions) error
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pipbridge",
		Short:         "Drive uv from a Pipfile and keep Pipfile.lock in sync",
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

	rootCmd.PersistentFlags().StringP("dir", "C", "", "Start the Pipfile search in this directory")
	rootCmd.PersistentFlags().String("pipfile", "", "Path to the Pipfile, skipping discovery")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log a timing line for every traced operation")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newConvertCmd())
	rootCmd.AddCommand(c.newFmtCmd())
	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newLockAllCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newRemoveCmd())
	rootCmd.AddCommand(c.newScriptsCmd())
	rootCmd.AddCommand(c.newRequirementsCmd())
	rootCmd.AddCommand(c.newGraphCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.shutdownTracing != nil {
		_ = c.shutdownTracing(context.WithoutCancel(ctx))
		c.shutdownTracing = nil
	}
	return err
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

func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
		if l, ok := c.logger.(jsonLogger); ok {
			l.SetJSON(true)
		}
	}
	if trace, _ := cmd.Flags().GetBool("trace"); trace && c.shutdownTracing == nil {
		_, c.shutdownTracing = telemetry.Install(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(c.logger)))
	}
	return nil
}

// target builds the app target from the global flags.
func target(cmd *cobra.Command) (app.Target, error) {
	dir, _ := cmd.Flags().GetString("dir")
	pipfile, _ := cmd.Flags().GetString("pipfile")
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return app.Target{}, err
		}
		dir = cwd
	}
	return app.Target{Dir: dir, Pipfile: pipfile}, nil
}
