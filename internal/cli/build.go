package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Output string // output file path
	Strict bool   // assemble the query in strict mode
}

// BuildResult is the JSON payload for a successful build.
type BuildResult struct {
	Query string `json:"query"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <definition.yaml>",
		Short: "Assemble a query definition into an Apicalypse query string",
		Long: `Assemble a YAML query definition into a single Apicalypse query string.

The definition's clauses (fields, exclude, where, sort, limit, offset,
search) are validated and serialized in grammar order. The result is
printed to stdout, or written to a file with --output.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "fail hard instead of masking render errors")

	return cmd
}

func runBuild(opts *BuildOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	def, err := LoadDefinition(path)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "load definition", err)
	}
	formatter.VerboseLog("Loaded definition from %s", path)

	query, err := Assemble(def, opts.Strict)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "assemble query", err)
	}

	rendered, err := query.Render()
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "render query", err)
	}
	formatter.VerboseLog("Rendered %d byte(s)", len(rendered))

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(rendered), 0644); err != nil {
			formatter.Error(ErrCodeGeneric, fmt.Sprintf("writing %s: %v", opts.Output, err), nil)
			return WrapExitError(ExitCommandError, "write output", err)
		}
		formatter.VerboseLog("Wrote query to %s", opts.Output)
		if opts.Format == "json" {
			return formatter.Success(BuildResult{Query: rendered})
		}
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(BuildResult{Query: rendered})
	}
	return formatter.Success(rendered)
}
