// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/tfctl/dirgen/internal/log"
)

// ErrUnsupported means the platform has no usable clipboard program.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Error wraps any clipboard failure.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to copy to clipboard: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// CopierFunc adapts a function to Copier.
type CopierFunc func(text string) error

func (f CopierFunc) Copy(text string) error { return f(text) }

// System uses the platform clipboard program (pbcopy, clip, xclip, xsel or
// wl-copy).
type System struct{}

// Copy implements Copier.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return &Error{Err: ErrUnsupported}
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Debugf("clipboard write err: err=%v", err)
		return &Error{Err: err}
	}
	log.Debugf("clipboard write: len=%d", len(text))
	return nil
}
