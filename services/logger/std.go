package logsvc

import (
	"io/ioutil"
	"log"

	"github.com/DrFaustest/Basic-grade-book/core"
)

// StdLogger prints to a *log.Logger. Debug messages are dropped unless debug is on.
type StdLogger struct {
	std   *log.Logger
	debug bool
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger, debug bool) *StdLogger {
	return &StdLogger{std: std, debug: debug}
}

// NewDiscardLogger drops everything; used by tests.
func NewDiscardLogger() *StdLogger {
	return NewStdLogger(log.New(ioutil.Discard, "", 0), false)
}

func (l StdLogger) print(level, msg string, args []interface{}) {
	l.std.Println(level + " " + msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l StdLogger) Debug(msg string, args ...interface{}) {
	if l.debug {
		l.print("DEBUG", msg, args)
	}
}

func (l StdLogger) Info(msg string, args ...interface{}) { l.print("INFO", msg, args) }

func (l StdLogger) Warn(msg string, args ...interface{}) { l.print("WARN", msg, args) }

func (l StdLogger) Error(msg string, args ...interface{}) { l.print("ERROR", msg, args) }

func (l StdLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args)
	l.std.Fatal(msg)
}
