package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
)

const (
	defaultDebugLevel = "info"
	defaultInput      = "-"
)

type config struct {
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile    string `long:"logfile" description:"Also write logs to this file, rotating it as it grows"`
	Input      string `short:"f" long:"file" description:"JSON request file, - reads stdin"`
	Strict     bool   `long:"strict" description:"Refuse to sign with a key that does not match its ring member"`
}

// loadConfig parses the command line options. The remaining arguments hold
// the command to run.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		DebugLevel: defaultDebugLevel,
		Input:      defaultInput,
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag)
	parser.Usage = "[OPTIONS] sign|verify|keygen"
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	if len(remainingArgs) != 1 {
		return nil, nil, fmt.Errorf("loadConfig: expected exactly one "+
			"command, got %d -- %s", len(remainingArgs), usageMessage)
	}
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return nil, nil, fmt.Errorf("loadConfig: %w -- %s", err,
			usageMessage)
	}
	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			return nil, nil, err
		}
	}
	return &cfg, remainingArgs, nil
}
