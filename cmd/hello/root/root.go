package root

import (
	"github.com/flarebyte/hello-world-cli/cmd/hello/diagnose"
	"github.com/flarebyte/hello-world-cli/cmd/hello/version"
	"github.com/flarebyte/hello-world-cli/internal/greeting"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for hello.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "CLI: Print the classic greeting to standard output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The whole happy path: one write to stdout, nothing else.
			return greeting.Print()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(diagnose.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
