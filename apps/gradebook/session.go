package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
)

// shell runs commands read from cli.in, one per line, against the same gradebook,
// so that undo, history and explicit syncs span several commands.
func (cli *commandLine) shell() error {
	fmt.Fprintln(cli.out, `Gradebook shell. Type "help" for commands, "exit" to quit.`)
	for {
		fmt.Fprint(cli.out, "> ")
		line, err := cli.in.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if quit := cli.shellLine(line); quit {
				return nil
			}
		}
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(cli.out)
				return nil
			}
			return err
		}
	}
}

func (cli *commandLine) shellLine(line string) (quit bool) {
	args, err := shlex.Split(line)
	if err != nil {
		fmt.Fprintf(cli.out, "error: %s\n", err)
		return false
	}
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "exit", "quit":
		return true
	case "help":
		cli.printUsage()
		return false
	case "shell":
		fmt.Fprintln(cli.out, "already in a shell")
		return false
	}
	if err := cli.exec(args[0], args[1:]); err != nil && err != errHelp {
		fmt.Fprintf(cli.out, "error: %s\n", describe(err))
	}
	return false
}

func (cli *commandLine) history() error {
	changes := cli.svc.History()
	if len(changes) == 0 {
		fmt.Fprintln(cli.out, "No changes to undo.")
		return nil
	}
	tw := cli.table()
	fmt.Fprintln(tw, "ID\tCHANGE\tAT")
	for _, chg := range changes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", chg.ID, chg.Op, chg.At.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}

func (cli *commandLine) undo() error {
	chg, err := cli.svc.Undo()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Undid %s.\n", chg.Op)
	return nil
}

func (cli *commandLine) sync() error {
	if !cli.svc.Dirty() {
		fmt.Fprintln(cli.out, "Nothing to sync.")
		return nil
	}
	if err := cli.svc.Sync(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Changes saved.")
	return nil
}

func (cli *commandLine) reload() error {
	cli.loadErr = cli.svc.Reload()
	if cli.loadErr != nil {
		return cli.loadErr
	}
	fmt.Fprintln(cli.out, "Gradebook reloaded.")
	return nil
}
