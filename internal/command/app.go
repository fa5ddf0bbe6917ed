// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirgen/internal/aws"
	"github.com/tfctl/dirgen/internal/clipboard"
	"github.com/tfctl/dirgen/internal/config"
	"github.com/tfctl/dirgen/internal/differ"
	"github.com/tfctl/dirgen/internal/log"
	"github.com/tfctl/dirgen/internal/meta"
	"github.com/tfctl/dirgen/internal/output"
	"github.com/tfctl/dirgen/internal/version"
)

// ErrUsage is returned when dirgen is started with arguments.
var ErrUsage = errors.New("please run dirgen without any arguments")

// CheckUsage rejects any argument after the program name.
func CheckUsage(args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	return nil
}

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	if err := CheckUsage(args); err != nil {
		return nil, err
	}

	sd, _ := os.Getwd()

	// No config file is fine; everything has a default. A file named in
	// DIRGEN_CFG_FILE that can't be used is worth a warning.
	cfg, err := config.Load()
	if err != nil {
		if path := os.Getenv("DIRGEN_CFG_FILE"); path != "" {
			log.Warnf("ignoring config file %s, using defaults: %v", path, err)
		} else {
			log.Debugf("no config loaded: err=%v", err)
		}
	}

	meta := meta.Meta{
		Config:      cfg,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:      "dirgen",
		Usage:     "generate ?replace directives from two images",
		UsageText: "dirgen",
		HideHelp:  true,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewSettingsFlags(cfg.Source),
		Action: rootAction,
	}

	return app, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

func rootAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("starting session: version=%s dir=%s config=%s", version.Version, m.StartingDir, m.Config.Source)

	s, err := NewSession(ctx, cmd)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "dirgen %s. Type 'quit' or 'exit' to stop.\n", version.Version)
	return s.Run(ctx)
}

// NewSession builds a stdin/stdout session from the resolved settings. The
// output directory is created here so a failure stops dirgen before the
// first prompt.
func NewSession(ctx context.Context, cmd *cli.Command) (*Session, error) {
	policy, err := differ.ParsePolicy(cmd.String("tie-break"))
	if err != nil {
		return nil, err
	}

	sinks, err := buildSinks(ctx, cmd)
	if err != nil {
		return nil, err
	}

	color := cmd.Bool("color")
	s := &Session{
		Reader:  NewLineReader(os.Stdin, os.Stdout, color),
		Out:     os.Stdout,
		Load:    LoadGrid,
		Sinks:   sinks,
		Policy:  policy,
		Summary: cmd.Bool("summary"),
		Color:   color,
	}
	if cmd.Bool("clipboard") {
		s.Clipboard = clipboard.System{}
	}
	return s, nil
}

func buildSinks(ctx context.Context, cmd *cli.Command) ([]output.Sink, error) {
	var sinks []output.Sink

	if cmd.Bool("save") {
		fs, err := output.NewFileSink(cmd.String("output-dir"))
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fs)
	}

	if bucket := cmd.String("s3-bucket"); bucket != "" {
		client, err := aws.NewS3(ctx, aws.Settings{
			Profile:  cmd.String("aws-profile"),
			Region:   cmd.String("aws-region"),
			Endpoint: cmd.String("s3-endpoint"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set up S3 uploads to %s: %w", bucket, err)
		}
		sinks = append(sinks, &output.S3Sink{
			Client: client,
			Bucket: bucket,
			Prefix: cmd.String("s3-prefix"),
		})
	}

	return sinks, nil
}
