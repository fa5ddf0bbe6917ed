// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/dirgen/internal/clipboard"
	"github.com/tfctl/dirgen/internal/differ"
	"github.com/tfctl/dirgen/internal/output"
	"github.com/tfctl/dirgen/internal/pixel"
)

var (
	opaqueRed   = pixel.Pixel{R: 255, A: 255}
	opaqueBlack = pixel.Pixel{A: 255}
	opaqueWhite = pixel.Pixel{R: 255, G: 255, B: 255, A: 255}
)

// fixtures is a Loader over in-memory grids keyed by path.
type fixtures map[string]*pixel.Grid

func (f fixtures) load(path string) (pixel.Reader, error) {
	g, ok := f[path]
	if !ok {
		return nil, &pixel.LoadError{Path: path, Err: fs.ErrNotExist}
	}
	return g, nil
}

func defaultFixtures() fixtures {
	return fixtures{
		"a.png":     pixel.FromRows([][]pixel.Pixel{{opaqueRed, opaqueBlack}}),
		"b.png":     pixel.FromRows([][]pixel.Pixel{{opaqueRed, opaqueWhite}}),
		"big.png":   pixel.NewGrid(4, 4),
		"multi.png": pixel.FromRows([][]pixel.Pixel{{opaqueBlack, opaqueBlack}}),
		"split.png": pixel.FromRows([][]pixel.Pixel{{opaqueRed, opaqueWhite}}),
	}
}

type recordingCopier struct {
	copied []string
	err    error
}

func (c *recordingCopier) Copy(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

type recordingSink struct {
	records []output.Record
	err     error
}

func (s *recordingSink) Save(_ context.Context, rec output.Record) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.records = append(s.records, rec)
	return "mem://" + rec.Name(), nil
}

var fixedNow = time.Date(2026, 10, 17, 14, 30, 15, 0, time.Local)

func newTestSession(input string) (*Session, *bytes.Buffer, *recordingCopier, *recordingSink) {
	var out bytes.Buffer
	cp := &recordingCopier{}
	sink := &recordingSink{}
	s := &Session{
		Reader:    NewScanReader(strings.NewReader(input), &out),
		Out:       &out,
		Load:      defaultFixtures().load,
		Clipboard: cp,
		Sinks:     []output.Sink{sink},
		Now:       func() time.Time { return fixedNow },
	}
	return s, &out, cp, sink
}

func TestSession_QuitAtFirstPrompt(t *testing.T) {
	for _, word := range []string{"quit", "exit", "  quit  "} {
		t.Run(word, func(t *testing.T) {
			s, out, cp, sink := newTestSession(word + "\na.png\nb.png\n")

			require.NoError(t, s.Run(context.Background()))

			assert.Equal(t, firstPrompt+"\n", out.String())
			assert.Empty(t, cp.copied)
			assert.Empty(t, sink.records)
		})
	}
}

func TestSession_QuitAtSecondPrompt(t *testing.T) {
	s, out, cp, _ := newTestSession("a.png\nexit\n")

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, firstPrompt+"\n"+secondPrompt+"\n", out.String())
	assert.Empty(t, cp.copied)
}

func TestSession_EOFEndsSession(t *testing.T) {
	s, _, cp, _ := newTestSession("a.png\n")

	require.NoError(t, s.Run(context.Background()))
	assert.Empty(t, cp.copied)
}

func TestSession_Compare(t *testing.T) {
	s, out, cp, sink := newTestSession("a.png\nb.png\nquit\n")

	require.NoError(t, s.Run(context.Background()))

	require.Equal(t, []string{"?replace;000000ff=ffffffff"}, cp.copied)
	assert.Contains(t, out.String(), "Compared 'b.png' to 'a.png'. Directives copied to clipboard.")
	assert.Contains(t, out.String(), "Saved to mem://a-b-143015.txt")

	require.Len(t, sink.records, 1)
	rec := sink.records[0]
	assert.Equal(t, "?replace;000000ff=ffffffff", rec.Directive.String())
	assert.Equal(t, "a.png", rec.First)
	assert.Equal(t, "b.png", rec.Second)
	assert.Equal(t, fixedNow, rec.Time)
}

func TestSession_IdenticalImages(t *testing.T) {
	s, _, cp, sink := newTestSession("a.png\na.png\n")

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []string{"?replace"}, cp.copied)
	assert.Len(t, sink.records, 1)
}

func TestSession_QuotedPaths(t *testing.T) {
	s, _, cp, _ := newTestSession("\"a.png\"\n'b.png'\n")

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []string{"?replace;000000ff=ffffffff"}, cp.copied)
}

func TestSession_DimensionMismatchContinues(t *testing.T) {
	s, out, cp, sink := newTestSession("a.png\nbig.png\na.png\nb.png\nquit\n")

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "Image sizes differ. Please use two images with the same dimensions.")
	assert.Contains(t, out.String(), "2x1 vs 4x4")
	// Only the second pair produced a directive.
	assert.Len(t, cp.copied, 1)
	assert.Len(t, sink.records, 1)
}

func TestSession_LoadErrorContinues(t *testing.T) {
	s, out, cp, sink := newTestSession("missing.png\nb.png\na.png\nb.png\n")

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "Comparing failed!")
	assert.Contains(t, out.String(), "missing.png")
	assert.Len(t, cp.copied, 1)
	assert.Len(t, sink.records, 1)
}

func TestSession_ClipboardUnsupported(t *testing.T) {
	s, out, cp, sink := newTestSession("a.png\nb.png\n")
	cp.err = &clipboard.Error{Err: clipboard.ErrUnsupported}

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "Your OS doesn't support copying to clipboard natively!")
	assert.Contains(t, out.String(), "\n?replace;000000ff=ffffffff\n")
	assert.Len(t, sink.records, 1, "directive is still saved")
}

func TestSession_ClipboardFailure(t *testing.T) {
	s, out, cp, sink := newTestSession("a.png\nb.png\n")
	cp.err = &clipboard.Error{Err: errors.New("xclip: exit status 1")}

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "Copying to clipboard failed: failed to copy to clipboard: xclip: exit status 1")
	assert.Contains(t, out.String(), "\n?replace;000000ff=ffffffff\n")
	assert.Len(t, sink.records, 1)
}

func TestSession_ClipboardOff(t *testing.T) {
	s, out, _, _ := newTestSession("a.png\nb.png\n")
	s.Clipboard = nil

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "Compared 'b.png' to 'a.png'.\n?replace;000000ff=ffffffff\n")
	assert.NotContains(t, out.String(), "clipboard")
}

func TestSession_SinkFailureContinues(t *testing.T) {
	s, out, cp, sink := newTestSession("a.png\nb.png\na.png\nb.png\n")
	sink.err = errors.New("disk full")

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 2, strings.Count(out.String(), "Saving failed: disk full"))
	assert.Len(t, cp.copied, 2)
}

func TestSession_ConflictWarning(t *testing.T) {
	tests := []struct {
		policy   differ.Policy
		expected string
	}{
		{differ.LastWins, "?replace;000000ff=ffffffff"},
		{differ.FirstWins, "?replace;000000ff=ff0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			s, out, cp, _ := newTestSession("multi.png\nsplit.png\n")
			s.Policy = tt.policy

			require.NoError(t, s.Run(context.Background()))

			assert.Equal(t, []string{tt.expected}, cp.copied)
			assert.Contains(t, out.String(),
				fmt.Sprintf("Warning: 1 source colors change into more than one color. The %s one seen is used.", tt.policy))
		})
	}
}

func TestSession_Summary(t *testing.T) {
	s, out, _, _ := newTestSession("a.png\nb.png\n")
	s.Summary = true

	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "1 colors, 1 pixels changed")
}

func TestSession_Compare_Direct(t *testing.T) {
	s := &Session{Load: defaultFixtures().load}

	d, m, err := s.Compare("a.png", "b.png")
	require.NoError(t, err)
	assert.Equal(t, "?replace;000000ff=ffffffff", d.String())
	assert.Equal(t, 1, m.Len())

	_, _, err = s.Compare("a.png", "big.png")
	assert.ErrorIs(t, err, differ.ErrDimensionMismatch)

	_, _, err = s.Compare("nope.png", "b.png")
	var le *pixel.LoadError
	assert.ErrorAs(t, err, &le)
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, expected string
	}{
		{"a.png", "a.png"},
		{`"a b.png"`, "a b.png"},
		{"'a.png'", "a.png"},
		{`"a.png'`, `"a.png'`},
		{`"`, `"`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, unquote(tt.in))
		})
	}
}
