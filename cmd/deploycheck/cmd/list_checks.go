package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sms-spam-demo/deploycheck/internal/engine"
	"github.com/sms-spam-demo/deploycheck/internal/runtime"
)

func listChecksCmd() *cobra.Command {
	listChecksCmd := &cobra.Command{
		Use:   "list-checks",
		Short: "List all checks that will be executed",
		Long:  "This command will list the checks that deploycheck runs against a project, in execution order",
		Run:   listChecksRunFunc,
	}
	return listChecksCmd
}

// listChecksRunFunc binds printChecks to cobra's Run function
// definition, passing the cobra command's output as an io.Writer.
func listChecksRunFunc(cmd *cobra.Command, args []string) {
	printChecks(cmd.OutOrStdout())
}

// printChecks writes the formatted check list output to w.
func printChecks(w io.Writer) {
	// The full battery with nothing skipped.
	names, _ := engine.CheckNames(context.TODO(), runtime.Config{})

	fmt.Fprintln(w, "These are the checks executed against a project, in order:")
	fmt.Fprintln(w, formatList(names))
	fmt.Fprintln(w, "The DeployCredentials and ContainerRuntime checks honor --skip-ssh and --skip-docker respectively.")
}

// formatList returns list as a hyphen-prefixed, newline delimited string.
func formatList(list []string) string {
	var s strings.Builder
	for _, v := range list {
		s.WriteString(dashPrefix(v) + "\n")
	}

	return s.String()
}

// dashPrefix prefixes string s with a hyphen.
func dashPrefix(s string) string {
	return fmt.Sprintf("- %s", s)
}
