// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ compares two equally sized pixel grids and collects the color
// substitutions that turn the first into the second.
package differ
