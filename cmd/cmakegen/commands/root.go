// Package commands implements the CLI commands for cmakegen.
package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/cmakegen/internal/app"
	"go.trai.ch/cmakegen/internal/build"
	"go.trai.ch/cmakegen/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for cmakegen.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, target string, opts app.GenerateOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "cmakegen <target_name>",
		Short: "Generate a CMakeLists.txt for an nginx module object library",
		Long: `Read JSON build info from standard input and print a CMakeLists.txt
that builds the nginx module as an object library.

The input is an object with "include_directories" and "c_sources" arrays of
paths relative to the nginx source tree. The target name is used verbatim.`,
		Example: `  cmakegen ngx_http_datadog_module < build_info.json > CMakeLists.txt

  # Target names starting with "-" follow a "--" separator.
  cmakegen -- -mymod < build_info.json`,
		Args:          targetArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runGenerate,
	}

	flags := rootCmd.Flags()
	flags.StringP("config", "c", "", "Settings file (YAML) overriding the manifest defaults")
	flags.StringP("input", "i", app.StdinPath, `Build info JSON file ("-" reads standard input)`)
	flags.String("base-dir", domain.DefaultBaseDir, "Directory prefixed onto every path")
	flags.StringP("output", "o", "", "Write the manifest to this file instead of standard output")
	flags.String("check", "", "Verify that this file matches the rendered manifest instead of writing it")
	flags.BoolP("verbose", "v", false, "Print debug messages on standard error")
	flags.Bool("log-json", false, "Print log messages as JSON")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Registered after the flags above so -v stays with --verbose.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	return c
}

// targetArg requires exactly one positional argument, the target name.
func targetArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return zerr.Wrap(domain.ErrUsage, "expected exactly one target name, got "+strconv.Itoa(len(args))+" arguments")
	}
	return nil
}

func (c *CLI) runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	opts := app.GenerateOptions{}
	opts.ConfigPath, _ = flags.GetString("config")
	opts.InputPath, _ = flags.GetString("input")
	opts.OutputPath, _ = flags.GetString("output")
	opts.CheckPath, _ = flags.GetString("check")
	opts.Verbose, _ = flags.GetBool("verbose")
	opts.JSONLogs, _ = flags.GetBool("log-json")

	// The flag default must not mask a settings file value.
	if flags.Changed("base-dir") {
		baseDir, _ := flags.GetString("base-dir")
		opts.BaseDir = &baseDir
	}

	return c.app.Generate(cmd.Context(), args[0], opts)
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
