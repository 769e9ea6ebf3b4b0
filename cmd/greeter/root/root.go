package root

import (
	"fmt"
	"io"

	"github.com/flarebyte/greeter/internal/buildinfo"
	"github.com/flarebyte/greeter/internal/greeting"
	"github.com/flarebyte/greeter/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Options holds the parsed flags of one invocation.
type Options struct {
	Name     string
	Version  bool
	LogLevel string
}

// NewRootCmd creates the greeter command writing to stdout and stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "greeter",
		Short: `A simple "hello world" CLI application`,
		Args: func(cmd *cobra.Command, args []string) error {
			return noArgs(cmd, args, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreeter(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	bindFlags(cmd.Flags(), opts)
	helpFunc := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		// Flags are parsed before help is shown; --version still wins.
		if opts.Version {
			_ = printVersion(c)
			return
		}
		helpFunc(c, args)
	})
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newUsageError(c, err)
	})
	return cmd
}

func bindFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVarP(&opts.Name, "name", "n", greeting.DefaultName, "Name to greet.")
	fs.BoolVar(&opts.Version, "version", false, "Show the application's version and exit.")
	fs.StringVar(&opts.LogLevel, "log-level", logging.DefaultLevel, "Diagnostics level on stderr: debug|info|warn|error")
	_ = fs.MarkHidden("log-level")
}

// runGreeter runs once every flag is parsed, so --version wins wherever it
// appears on the command line.
func runGreeter(cmd *cobra.Command, opts *Options) error {
	log := logging.New(opts.LogLevel, cmd.ErrOrStderr())
	log.Debug("build", "summary", buildinfo.Summary())

	if opts.Version {
		log.Debug("version requested, skipping greeting")
		return printVersion(cmd)
	}
	log.Debug("greeting", "name", opts.Name)
	return printLine(cmd, greeting.Greet(opts.Name))
}

func printVersion(cmd *cobra.Command) error {
	return printLine(cmd, greeting.VersionLine(buildinfo.Name(), buildinfo.ResolvedVersion()))
}

func printLine(cmd *cobra.Command, line string) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// noArgs rejects positional arguments unless --version already ended the run.
func noArgs(cmd *cobra.Command, args []string, opts *Options) error {
	if opts.Version {
		return nil
	}
	if err := cobra.NoArgs(cmd, args); err != nil {
		return newUsageError(cmd, err)
	}
	return nil
}

// Execute runs the root command with provided args.
func Execute(args []string, stdout, stderr io.Writer) error {
	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}
