// Command quill runs and explores programs written in the quill scripting
// language: a small, Python-flavored, single-inheritance OOP language.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quill",
		Short:         "Run and explore quill scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newREPLCmd())
	root.AddCommand(newVersionCmd())
	return root
}
