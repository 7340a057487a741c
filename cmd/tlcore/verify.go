package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hassan/tlcore/internal/demos"
	"github.com/hassan/tlcore/internal/ir"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <demo>",
		Short: "Check a demo module's structural invariants without optimizing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, ok := demos.Registry[args[0]]
			if !ok {
				return errors.Errorf("unknown demo %q (see `tlcore list`)", args[0])
			}
			errs := ir.Verify(ctor())
			if len(errs) == 0 {
				fmt.Println("ok")
				return nil
			}
			for _, e := range errs {
				fmt.Println(e)
			}
			return errors.Errorf("%d violation(s)", len(errs))
		},
	}
}
