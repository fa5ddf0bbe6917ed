// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/tfctl/dirgen/internal/command"
	"github.com/tfctl/dirgen/internal/log"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	return run(args, os.Stderr)
}

// run returns the process exit code: 0 after quit/exit or end of input, 1
// for usage and setup errors, 2 when the session fails to start.
func run(args []string, stderr io.Writer) int {
	if err := command.CheckUsage(args); err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("usage err: err=%v", err)
		return 1
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}
