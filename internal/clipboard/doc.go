// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package clipboard copies directives to the OS clipboard on a best-effort
// basis.
package clipboard
