package cli

import (
	"github.com/spf13/cobra"
)

// CheckResult is the JSON payload for a successful check.
type CheckResult struct {
	Definition string `json:"definition"`
	Clauses    int    `json:"clauses"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <definition.yaml>",
		Short: "Validate a query definition without printing the query",
		Long: `Validate a YAML query definition.

The definition is loaded and assembled exactly as build would, but only
diagnostics are reported. Exits non-zero when the definition is invalid.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	def, err := LoadDefinition(path)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "load definition", err)
	}

	query, err := Assemble(def, false)
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "assemble query", err)
	}

	rendered, err := query.Render()
	if err != nil {
		formatter.Error(errorCode(err), err.Error(), nil)
		return WrapExitError(ExitFailure, "render query", err)
	}

	clauses := countClauses(def)
	formatter.VerboseLog("Definition assembles to %d byte(s) across %d clause(s)", len(rendered), clauses)

	if opts.Format == "json" {
		return formatter.Success(CheckResult{Definition: path, Clauses: clauses})
	}
	return formatter.Success("definition ok")
}

// countClauses counts the top-level clause slots the definition sets.
func countClauses(def *Definition) int {
	n := 0
	if len(def.Fields) > 0 {
		n++
	}
	if len(def.Exclude) > 0 {
		n++
	}
	if len(def.Where) > 0 {
		n++
	}
	if len(def.Sort) > 0 {
		n++
	}
	if def.Limit != nil {
		n++
	}
	if def.Offset != nil {
		n++
	}
	if def.Search != "" {
		n++
	}
	return n
}
