// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package directive renders a color mapping as a single-line replace
// directive of the form ?replace;rrggbbaa=rrggbbaa;...
package directive
