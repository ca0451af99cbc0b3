// Package cli implements the cobra-based command line for oci-description.
//
// The binary has a single root command and no subcommands: it takes an
// optional Dockerfile path, extracts the OCI description label, and prints
// it. Run is the testable core; Execute wires it to the process.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/oci-description/internal/label"
	"github.com/shinji-kodama/oci-description/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values for the root command.
type rootFlags struct {
	// output selects the stdout format: text (default), json or yaml.
	output string

	// verbose enables debug logging on stderr.
	verbose bool
}

// app is the state of a single invocation. Nothing outlives it.
type app struct {
	stdout io.Writer
	stderr io.Writer
	flags  rootFlags
	log    *logrus.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)

	return &app{
		stdout: stdout,
		stderr: stderr,
		flags:  rootFlags{output: string(formatText)},
		log:    logger,
	}
}

// NewRootCommand creates the root cobra command writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	return newApp(stdout, stderr).rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		// Use is the one-line usage pattern; its first word becomes the
		// command name in help and --version output.
		Use:   "oci-description [dockerfile-path]",
		Short: "Print the OCI image description label of a Dockerfile",
		Long: fmt.Sprintf(`oci-description reads a Dockerfile and prints the value of its
%s label, for release tooling that needs the
image description as plain text.

The path defaults to %q in the current directory.

Exit codes:
  0  label found and printed
  1  usage error
  2  Dockerfile could not be read
  3  label not found in the Dockerfile

Examples:
  oci-description
  oci-description ./build/Dockerfile
  oci-description --output json ./build/Dockerfile`, label.Key, label.DefaultDockerfile),

		// The Dockerfile path is optional; a second argument is a usage error.
		Args: cobra.MaximumNArgs(1),

		// SilenceUsage keeps a failed lookup from dumping the usage text.
		SilenceUsage: true,

		// SilenceErrors leaves error printing to Run, so the missing-label
		// line stays byte-exact and JSON mode can reformat it.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// PersistentPreRunE runs after flag parsing, so --verbose is known
		// before any work is logged.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.flags.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},

		// RunE returns an error to Run, which maps it to an exit code.
		RunE: func(cmd *cobra.Command, args []string) error {
			// An empty path means the default Dockerfile.
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return a.runExtract(path)
		},
	}

	// Route cobra's own output (help, --version) to the invocation's streams.
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	// --output only changes stdout on success; the default text format
	// prints the bare value.
	cmd.Flags().StringVarP(&a.flags.output, "output", "o", string(formatText),
		"Output format: text, json, yaml")

	// --verbose lowers the logrus level to debug; diagnostics go to stderr.
	cmd.Flags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// runExtract resolves the path, extracts the label and prints it.
// Nothing is written to stdout unless extraction succeeds.
func (a *app) runExtract(path string) error {
	format, err := parseOutputFormat(a.flags.output)
	if err != nil {
		return fmt.Errorf("invalid --output value: %w", err)
	}

	path = label.ResolvePath(path)
	a.log.WithField("path", path).Debug("reading Dockerfile")

	desc, err := label.FromFile(path)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"path":  desc.Path,
		"label": desc.Label,
	}).Debug("label found")

	return writeDescription(a.stdout, format, desc)
}

// Run executes the CLI with args (without the program name) and returns
// the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	cmd := a.rootCommand()
	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		return a.fail(err)
	}
	return model.ExitSuccess.Int()
}

// fail prints err to stderr and maps it to an exit code. CLIError
// values carry their own code; anything else is a general error.
func (a *app) fail(err error) int {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		a.printError(cliErr.Code, cliErr.Message, cliErr.Err)
		return cliErr.Code.Int()
	}

	a.printError(model.ExitGeneralError, "Error: "+err.Error(), nil)
	return model.ExitGeneralError.Int()
}

// printError writes exactly one line to stderr: the plain message in text
// and yaml mode, a compact JSON object in json mode.
func (a *app) printError(code model.ExitCode, message string, underlying error) {
	if outputFormat(a.flags.output) == formatJSON {
		writeErrorJSON(a.stderr, code, message, underlying)
		return
	}

	if underlying != nil {
		fmt.Fprintf(a.stderr, "%s: %v\n", message, underlying)
	} else {
		fmt.Fprintln(a.stderr, message)
	}
}

// Execute runs the CLI against the real process streams and exits.
// This is the main entry point called from main.go.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
