// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for dirgen's user
// configuration, a YAML document named dirgen.yaml in the directory returned
// by os.UserConfigDir, or the file named by DIRGEN_CFG_FILE.
package config
