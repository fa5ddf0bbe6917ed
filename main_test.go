// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_RejectsArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"positional", []string{"dirgen", "a.png"}},
		{"flag", []string{"dirgen", "--help"}},
		{"several", []string{"dirgen", "a.png", "b.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			code := run(tt.args, &stderr)

			assert.Equal(t, 1, code)
			assert.Equal(t, "please run dirgen without any arguments\n", stderr.String())
		})
	}
}
