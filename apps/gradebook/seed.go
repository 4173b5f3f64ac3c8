package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/DrFaustest/Basic-grade-book/core"
	"github.com/DrFaustest/Basic-grade-book/services/seed"
)

var nowFunc = time.Now // mockable

var errNotEmpty = errors.New("the gradebook is not empty, rerun with -force to replace it")

// seed replaces the whole gradebook with generated data.
func (cli *commandLine) seed(args []string) error {
	fs := cli.newFlagSet("seed")
	course := fs.String("course", "Math101", "The course to generate.")
	students := fs.Int("students", 25, "Number of students.")
	assignments := fs.Int("assignments", 20, "Number of assignments.")
	seedVal := fs.Int64("seed", 0, "Random seed. 0 picks one from the clock.")
	force := fs.Bool("force", false, "Replace a gradebook that is not empty.")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if !*force && len(cli.svc.ListClasses()) > 0 {
		return errNotEmpty
	}

	opts := seed.Options{
		Course:      *course,
		Students:    *students,
		Assignments: *assignments,
		Seed:        *seedVal,
	}
	if opts.Seed == 0 {
		opts.Seed = nowFunc().UnixNano()
	}
	if err := opts.Validate(core.NewValidator()); err != nil {
		return err
	}

	if err := seed.Materialize(cli.repo, seed.Generate(opts)); err != nil {
		return err
	}
	if cli.loadErr = cli.svc.Reload(); cli.loadErr != nil {
		return cli.loadErr
	}
	fmt.Fprintf(cli.out, "Seeded %s with %d students and %d assignments (seed %d).\n", opts.Course, opts.Students, opts.Assignments, opts.Seed)
	return nil
}
