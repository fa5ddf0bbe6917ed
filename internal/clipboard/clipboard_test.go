// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorUnwrap(t *testing.T) {
	err := error(&Error{Err: ErrUnsupported})

	var ce *Error
	require.ErrorAs(t, err, &ce)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestCopierFunc(t *testing.T) {
	var got string
	c := CopierFunc(func(text string) error {
		got = text
		return nil
	})

	require.NoError(t, c.Copy("?replace;000000ff=ffffffff"))
	assert.Equal(t, "?replace;000000ff=ffffffff", got)
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Err: errors.New("xclip: exit status 1")}

	assert.Equal(t, "failed to copy to clipboard: xclip: exit status 1", err.Error())
}
