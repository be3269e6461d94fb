// Command ringsig signs and verifies linkable ring signatures. Requests are
// read as JSON from a file or stdin and results are written as JSON to
// stdout.
//
//	ringsig keygen
//	ringsig -f request.json sign
//	ringsig -f request.json verify
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	logWrite.Close()
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes one command with the given arguments and streams
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, cmdArgs, err := loadConfig(args)
	if err != nil {
		return err
	}

	cmd, ok := commands[cmdArgs[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", cmdArgs[0])
	}
	mainLog.Debugf("Running %s", cmdArgs[0])

	var req request
	if cmd.needsInput {
		in := stdin
		if cfg.Input != defaultInput {
			f, err := os.Open(cfg.Input)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		if err := json.NewDecoder(in).Decode(&req); err != nil {
			return fmt.Errorf("failed to decode request: %w", err)
		}
	}

	resp, err := cmd.run(cfg, &req)
	if err != nil {
		return err
	}
	return json.NewEncoder(stdout).Encode(resp)
}
