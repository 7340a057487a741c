package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hassan/tlcore/internal/demos"
	"github.com/hassan/tlcore/internal/ir"
	"github.com/hassan/tlcore/internal/optimizer"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <demo>",
		Short: "Lower, optimize, and print a demo module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0])
		},
	}
}

func runBuild(name string) error {
	ctor, ok := demos.Registry[name]
	if !ok {
		return errors.Errorf("unknown demo %q (see `tlcore list`)", name)
	}
	buildID := uuid.NewString()
	log := logrus.WithFields(logrus.Fields{"demo": name, "build_id": buildID})

	module := ctor()
	log.Info("built module")

	if errs := ir.Verify(module); len(errs) > 0 {
		return errors.Wrap(firstOrJoined(errs), "module failed verification before optimization")
	}

	opt := optimizer.NewOptimizer()
	opt.SetVerbose(verbose)
	if err := opt.Optimize(module); err != nil {
		return errors.Wrap(err, "optimization failed")
	}

	if errs := ir.Verify(module); len(errs) > 0 {
		return errors.Wrap(firstOrJoined(errs), "module failed verification after optimization")
	}

	log.Info("optimization complete")
	fmt.Println(module.String())
	return nil
}

func firstOrJoined(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Errorf("%d violations, first: %v", len(errs), errs[0])
}
