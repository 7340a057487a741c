package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hassan/tlcore/internal/demos"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the demo modules build/verify accept",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(demos.Registry))
			for name := range demos.Registry {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}
