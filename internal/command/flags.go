// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/dirgen/internal/output"
)

// NewSettingsFlags returns the settings of a session. dirgen takes no
// arguments, so these are only ever filled from their environment variable
// or, failing that, the key in the config file at cfgPath.
func NewSettingsFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "clipboard",
			Usage:   "copy each directive to the clipboard",
			Value:   true,
			Sources: valueSources("DIRGEN_CLIPBOARD", "clipboard", cfgPath),
		},
		&cli.BoolFlag{
			Name:    "color",
			Usage:   "enable colored console output",
			Value:   true,
			Sources: valueSources("DIRGEN_COLOR", "color", cfgPath),
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Usage:   "directory directives are saved to",
			Value:   output.DefaultDir,
			Sources: valueSources("DIRGEN_OUTPUT_DIR", "output.dir", cfgPath),
		},
		&cli.StringFlag{
			Name:    "s3-bucket",
			Usage:   "also upload directives to this S3 bucket",
			Sources: valueSources("DIRGEN_S3_BUCKET", "s3.bucket", cfgPath),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "S3 compatible endpoint URL",
			Sources: valueSources("DIRGEN_S3_ENDPOINT", "s3.endpoint", cfgPath),
		},
		&cli.StringFlag{
			Name:    "s3-prefix",
			Usage:   "key prefix for uploaded directives",
			Sources: valueSources("DIRGEN_S3_PREFIX", "s3.prefix", cfgPath),
		},
		&cli.StringFlag{
			Name:    "aws-profile",
			Usage:   "AWS shared config profile for S3 uploads",
			Sources: valueSources("DIRGEN_AWS_PROFILE", "s3.profile", cfgPath),
		},
		&cli.StringFlag{
			Name:    "aws-region",
			Usage:   "AWS region for S3 uploads",
			Sources: valueSources("DIRGEN_AWS_REGION", "s3.region", cfgPath),
		},
		&cli.BoolFlag{
			Name:    "save",
			Usage:   "save each directive to a file in the output directory",
			Value:   true,
			Sources: valueSources("DIRGEN_SAVE", "output.save", cfgPath),
		},
		&cli.BoolFlag{
			Name:    "summary",
			Usage:   "print a table of the substitutions",
			Value:   false,
			Sources: valueSources("DIRGEN_SUMMARY", "summary", cfgPath),
		},
		&cli.StringFlag{
			Name:    "tie-break",
			Usage:   "target kept when a color changes into several colors (last, first)",
			Value:   "last",
			Sources: valueSources("DIRGEN_TIE_BREAK", "tie_break", cfgPath),
			Validator: func(value string) error {
				return FlagValidators(value, TieBreakValidator)
			},
		},
	}
}

// valueSources chains the env variable and, when a config file was found,
// the dotted key in it.
func valueSources(env, key, cfgPath string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain(cli.EnvVar(env))
	if cfgPath != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(cfgPath)))
	}
	return chain
}
