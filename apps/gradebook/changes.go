package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/DrFaustest/Basic-grade-book/core"
	"github.com/DrFaustest/Basic-grade-book/core/gradebook"
)

const overCapQuestion = "The new grade is higher than the maximum points. Do you want to proceed?"

var errOverCap = errors.New("the new grade is higher than the maximum points, rerun with -force to keep it")

func (cli *commandLine) addClass(args []string) error {
	fs := cli.newFlagSet("addclass")
	name := fs.String("name", "", "The class name.")
	if err := parseFlags(fs, args, "name"); err != nil {
		return err
	}
	if err := cli.svc.AddClass(*name); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Class added successfully.")
	return nil
}

func (cli *commandLine) addStudent(args []string) error {
	fs := cli.newFlagSet("addstudent")
	class := fs.String("class", "", "The class name. It is created if it does not exist.")
	name := fs.String("name", "", "The student name.")
	if err := parseFlags(fs, args, "class", "name"); err != nil {
		return err
	}
	if err := cli.svc.AddStudent(*class, *name); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Student added successfully.")
	return nil
}

func (cli *commandLine) addAssignment(args []string) error {
	var maxPts, initial optionalInt
	fs := cli.newFlagSet("addassignment")
	class := fs.String("class", "", "The class name.")
	name := fs.String("name", "", "The assignment name.")
	fs.Var(&maxPts, "max", "The maximum points of the assignment.")
	fs.Var(&initial, "initial", "The initial grade of every student. Ungraded if not set.")
	if err := parseFlags(fs, args, "class", "name"); err != nil {
		return err
	}
	na := gradebook.NewAssignment{
		Class:     *class,
		Name:      *name,
		MaxPoints: maxPts.val,
		Initial:   initial.val,
	}
	if err := cli.svc.AddAssignment(na); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Assignment added successfully.")
	return nil
}

func (cli *commandLine) removeStudent(args []string) error {
	fs := cli.newFlagSet("rmstudent")
	class := fs.String("class", "", "The class name.")
	name := fs.String("name", "", "The student name.")
	if err := parseFlags(fs, args, "class", "name"); err != nil {
		return err
	}
	if err := cli.svc.RemoveStudent(*class, *name); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Student removed successfully.")
	return nil
}

func (cli *commandLine) removeAssignment(args []string) error {
	fs := cli.newFlagSet("rmassignment")
	class := fs.String("class", "", "The class name.")
	name := fs.String("name", "", "The assignment name.")
	if err := parseFlags(fs, args, "class", "name"); err != nil {
		return err
	}
	if err := cli.svc.RemoveAssignment(*class, *name); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Assignment removed successfully.")
	return nil
}

// updateGrade asks for confirmation before storing a grade above the assignment's maximum points.
// Without a terminal to ask on, -force is required.
func (cli *commandLine) updateGrade(args []string) error {
	fs := cli.newFlagSet("grade")
	class := fs.String("class", "", "The class name.")
	student := fs.String("student", "", "The student name.")
	assignment := fs.String("assignment", "", "The assignment name.")
	value := fs.String("value", "", `The grade: a number of points, or "ungraded".`)
	force := fs.Bool("force", false, "Keep a grade above the maximum points without asking.")
	if err := parseFlags(fs, args, "class", "student", "assignment", "value"); err != nil {
		return err
	}

	grade, err := gradebook.ParseGrade(*value)
	if err != nil {
		return core.NewValidationError(core.ErrInvalidInput, core.FieldError{Field: "value", Error: err.Error()})
	}
	if !*force && cli.svc.ExceedsMaxPoints(*class, *student, *assignment, grade) {
		if !isTerminalFunc(int(os.Stdin.Fd())) {
			return errOverCap
		}
		if !confirmFunc(cli.in, cli.out, overCapQuestion) {
			return errAborted
		}
	}

	if err := cli.svc.UpdateGrade(*class, *student, *assignment, grade); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Grade updated successfully.")
	return nil
}
