// Package logutil provides a shared debug logger. Logging is disabled until
// SetOutput or SetOutputFile is called, typically from the -log flag.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. The logger writes to the
// output set by SetOutput or SetOutputFile, and discards everything before
// that.
func GetLogger(prefix string) *log.Logger {
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers obtained with GetLogger, both
// existing and future ones, to the given writer.
func SetOutput(newout io.Writer) {
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers to the named file.
func SetOutputFile(fname string) error {
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %v", err)
	}
	SetOutput(file)
	return nil
}
