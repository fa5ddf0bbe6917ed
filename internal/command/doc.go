// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the dirgen CLI: settings resolution, the interactive
// compare session and its prompt readers.
package command
