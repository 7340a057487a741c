// Command tlcore drives the intermediate-representation core over the
// bundled demo modules: build lowers and optimizes one, verify just
// checks its invariants. There is no frontend here to compile arbitrary
// source.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tlcore",
		Short: "Drive the companion-language IR core over its demo modules",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newBuildCmd(), newVerifyCmd(), newListCmd())
	return root
}
