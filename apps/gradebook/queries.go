package main

import (
	"fmt"
	"text/tabwriter"
)

func (cli *commandLine) table() *tabwriter.Writer {
	return tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
}

func (cli *commandLine) listClasses() error {
	for _, class := range cli.svc.ListClasses() {
		fmt.Fprintln(cli.out, class)
	}
	return nil
}

func (cli *commandLine) listStudents(args []string) error {
	fs := cli.newFlagSet("students")
	class := fs.String("class", "", "The class name.")
	if err := parseFlags(fs, args, "class"); err != nil {
		return err
	}
	for _, student := range cli.svc.ListStudents(*class) {
		fmt.Fprintln(cli.out, student)
	}
	return nil
}

func (cli *commandLine) listAssignments(args []string) error {
	fs := cli.newFlagSet("assignments")
	class := fs.String("class", "", "The class name.")
	if err := parseFlags(fs, args, "class"); err != nil {
		return err
	}
	tw := cli.table()
	fmt.Fprintln(tw, "ASSIGNMENT\tMAX POINTS")
	for _, assignment := range cli.svc.ListAssignments(*class) {
		fmt.Fprintf(tw, "%s\t%s\n", assignment, maxPointsText(cli.svc.MaxPoints(*class, assignment)))
	}
	return tw.Flush()
}

func (cli *commandLine) listGrades(args []string) error {
	fs := cli.newFlagSet("grades")
	class := fs.String("class", "", "The class name.")
	assignment := fs.String("assignment", "", "The assignment name.")
	if err := parseFlags(fs, args, "class", "assignment"); err != nil {
		return err
	}
	grades := cli.svc.Grades(*class, *assignment)
	tw := cli.table()
	fmt.Fprintln(tw, "STUDENT\tVALUE\tMAX POINTS")
	for _, student := range cli.svc.ListStudents(*class) {
		score, ok := grades[student]
		if !ok {
			continue
		}
		maxPts := "-"
		if score.MaxPoints != nil {
			maxPts = fmt.Sprint(*score.MaxPoints)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", student, score.Value, maxPts)
	}
	return tw.Flush()
}

func (cli *commandLine) report(args []string) error {
	fs := cli.newFlagSet("report")
	class := fs.String("class", "", "The class name.")
	if err := parseFlags(fs, args, "class"); err != nil {
		return err
	}
	tw := cli.table()
	fmt.Fprintln(tw, "STUDENT\tGRADE\tPERCENT")
	for _, row := range cli.svc.Report(*class) {
		pct := "-"
		if row.Graded {
			pct = fmt.Sprintf("%.2f%%", row.Percentage)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Student, row.Letter, pct)
	}
	return tw.Flush()
}

func maxPointsText(pts int, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprint(pts)
}
