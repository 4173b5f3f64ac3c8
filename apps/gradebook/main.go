package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/DrFaustest/Basic-grade-book/core"
	"github.com/DrFaustest/Basic-grade-book/core/gradebook"
	logsvc "github.com/DrFaustest/Basic-grade-book/services/logger"
	jsondb "github.com/DrFaustest/Basic-grade-book/storage/database/jsonfile"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(log.New(os.Stderr, "GRADEBOOK : ", log.LstdFlags|log.Lmicroseconds), conf)

	// set up store
	repo := jsondb.Open(conf.DataFile)
	svc := gradebook.NewService(repo, logger, gradebook.Options{
		AutoSync:     conf.AutoSync,
		HistoryLimit: conf.HistoryLimit,
	})

	// start CLI
	cli := commandLine{
		svc:    svc,
		repo:   repo,
		logger: logger,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	cli.loadErr = svc.Reload()

	err := cli.run(os.Args)
	logger.Close()
	if err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "error: %s\n", describe(err))
		}
		os.Exit(1)
	}
}
