package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"

	"ringsig.mleku.dev"
	"ringsig.mleku.dev/signer"
)

// logWriter implements an io.Writer that outputs to standard error and, once
// initialized, the log rotator.
type logWriter struct {
	logRotator *rotator.Rotator
}

func (lw *logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if lw.logRotator != nil {
		lw.logRotator.Write(p)
	}
	return len(p), nil
}

// Close closes the log rotator if there is one
func (lw *logWriter) Close() {
	if lw.logRotator != nil {
		lw.logRotator.Close()
		lw.logRotator = nil
	}
}

var (
	logWrite   = &logWriter{}
	backendLog = slog.NewBackend(logWrite)

	mainLog = backendLog.Logger("MAIN")
	ringLog = backendLog.Logger("RING")
	signLog = backendLog.Logger("SIGN")
)

// subsystemLoggers maps each subsystem to its logger
var subsystemLoggers = map[string]slog.Logger{
	"MAIN": mainLog,
	"RING": ringLog,
	"SIGN": signLog,
}

func init() {
	ringsig.UseLogger(ringLog)
	signer.UseLogger(signLog)
}

// setLogLevels sets every subsystem logger to the named level
func setLogLevels(level string) error {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid debug level %q", level)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(lvl)
	}
	return nil
}

// initLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	logWrite.Close()
	logWrite.logRotator = r
	return nil
}
