// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package pixel holds the 8-bit RGBA pixel model and the decoded image grid
// that the differ walks. It also owns image decoding from disk.
package pixel
