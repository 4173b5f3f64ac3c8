package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/DrFaustest/Basic-grade-book/core"
	"github.com/DrFaustest/Basic-grade-book/core/gradebook"
)

var (
	isTerminalFunc = term.IsTerminal // mockable
	confirmFunc    = confirm         // mockable

	errHelp    = errors.New("help provided")
	errAborted = errors.New("aborted")
)

type commandLine struct {
	svc    *gradebook.Service
	repo   gradebook.Repository
	logger core.Logger
	in     *bufio.Reader
	out    io.Writer

	// loadErr is the outcome of the last Reload; mutations are refused over a malformed document.
	loadErr error
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage: gradebook COMMAND [flags]")
	fmt.Fprintln(cli.out, "Queries:")
	fmt.Fprintln(cli.out, "  classes                                   - list classes")
	fmt.Fprintln(cli.out, "  students -class CLASS                     - list the students of a class")
	fmt.Fprintln(cli.out, "  assignments -class CLASS                  - list the assignments of a class")
	fmt.Fprintln(cli.out, "  grades -class CLASS -assignment NAME      - list every student's score on an assignment")
	fmt.Fprintln(cli.out, "  report -class CLASS                       - total grade of every student")
	fmt.Fprintln(cli.out, "Changes:")
	fmt.Fprintln(cli.out, "  addclass -name CLASS")
	fmt.Fprintln(cli.out, "  addstudent -class CLASS -name STUDENT")
	fmt.Fprintln(cli.out, "  addassignment -class CLASS -name NAME [-max POINTS] [-initial POINTS]")
	fmt.Fprintln(cli.out, "  rmstudent -class CLASS -name STUDENT")
	fmt.Fprintln(cli.out, "  rmassignment -class CLASS -name NAME")
	fmt.Fprintln(cli.out, "  grade -class CLASS -student STUDENT -assignment NAME -value POINTS|ungraded [-force]")
	fmt.Fprintln(cli.out, "  seed [-course NAME] [-students N] [-assignments N] [-seed N] [-force] - replace the gradebook with random data")
	fmt.Fprintln(cli.out, "Session:")
	fmt.Fprintln(cli.out, "  shell                                     - read commands from stdin, one per line")
	fmt.Fprintln(cli.out, "  history | undo | sync | reload")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	if err := cli.exec(args[1], args[2:]); err != nil {
		return err
	}
	if cli.svc.Dirty() {
		return cli.svc.Sync()
	}
	return nil
}

// exec runs one command. args exclude the command name.
func (cli *commandLine) exec(cmd string, args []string) error {
	if isMutation(cmd) && cli.loadErr != nil && !errors.Is(cli.loadErr, os.ErrNotExist) {
		return errors.Wrap(cli.loadErr, "refusing to modify the gradebook")
	}

	switch cmd {
	case "classes":
		return cli.listClasses()
	case "students":
		return cli.listStudents(args)
	case "assignments":
		return cli.listAssignments(args)
	case "grades":
		return cli.listGrades(args)
	case "report":
		return cli.report(args)
	case "addclass":
		return cli.addClass(args)
	case "addstudent":
		return cli.addStudent(args)
	case "addassignment":
		return cli.addAssignment(args)
	case "rmstudent":
		return cli.removeStudent(args)
	case "rmassignment":
		return cli.removeAssignment(args)
	case "grade":
		return cli.updateGrade(args)
	case "seed":
		return cli.seed(args)
	case "history":
		return cli.history()
	case "undo":
		return cli.undo()
	case "sync":
		return cli.sync()
	case "reload":
		return cli.reload()
	case "shell":
		return cli.shell()
	default:
		cli.printUsage()
		return errHelp
	}
}

func isMutation(cmd string) bool {
	switch cmd {
	case "addclass", "addstudent", "addassignment", "rmstudent", "rmassignment", "grade", "seed", "undo", "sync":
		return true
	}
	return false
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

// parseFlags parses args and checks that the required string flags are set.
func parseFlags(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	for _, name := range required {
		if core.CleanString(fs.Lookup(name).Value.String()) == "" {
			fs.Usage()
			return errHelp
		}
	}
	return nil
}

// optionalInt is an int flag that remembers whether it was set.
type optionalInt struct {
	val *int
}

func (o *optionalInt) String() string {
	if o.val == nil {
		return ""
	}
	return strconv.Itoa(*o.val)
}

func (o *optionalInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("not an integer")
	}
	o.val = &n
	return nil
}

// confirm asks a yes/no question on out and reads the answer from in. Anything but y/yes is a no.
func confirm(in *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, _ := in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// describe renders err for display, with field details for validation errors.
func describe(err error) string {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message()
	}
	return err.Error()
}
