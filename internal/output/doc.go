// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output persists generated directives (local files, optionally S3)
// and renders the console summary of a comparison.
package output
