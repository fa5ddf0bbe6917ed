// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tfctl/dirgen/internal/clipboard"
	"github.com/tfctl/dirgen/internal/differ"
	"github.com/tfctl/dirgen/internal/directive"
	"github.com/tfctl/dirgen/internal/log"
	"github.com/tfctl/dirgen/internal/output"
	"github.com/tfctl/dirgen/internal/pixel"
)

const (
	firstPrompt  = "First image path:"
	secondPrompt = "Second image path:"
)

// errQuit is returned by nextPath when the user typed a quit sentinel.
var errQuit = errors.New("quit")

// Loader decodes the image at path.
type Loader func(path string) (pixel.Reader, error)

// LoadGrid is the default Loader.
func LoadGrid(path string) (pixel.Reader, error) {
	g, err := pixel.Load(path)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Session is the interactive compare loop. A nil Clipboard means copying is
// turned off and the directive is printed instead.
type Session struct {
	Reader    LineReader
	Out       io.Writer
	Load      Loader
	Clipboard clipboard.Copier
	Sinks     []output.Sink
	Policy    differ.Policy
	Summary   bool
	Color     bool
	Now       func() time.Time

	styles styles
}

type styles struct {
	ok, warn, fail lipgloss.Style
}

func newStyles(color bool) styles {
	s := styles{
		ok:   lipgloss.NewStyle(),
		warn: lipgloss.NewStyle(),
		fail: lipgloss.NewStyle(),
	}
	if color {
		s.ok = s.ok.Foreground(lipgloss.Color("#3FA34D"))
		s.warn = s.warn.Foreground(lipgloss.Color("#E0A800"))
		s.fail = s.fail.Foreground(lipgloss.Color("#D7263D")).Bold(true)
	}
	return s
}

// Run prompts for image pairs until a quit sentinel or end of input. Both
// end the session without error.
func (s *Session) Run(ctx context.Context) error {
	s.styles = newStyles(s.Color)
	if s.Load == nil {
		s.Load = LoadGrid
	}
	if s.Now == nil {
		s.Now = time.Now
	}

	for {
		first, err := s.nextPath(firstPrompt)
		if err != nil {
			return endOfSession(err)
		}
		second, err := s.nextPath(secondPrompt)
		if err != nil {
			return endOfSession(err)
		}

		s.handle(ctx, first, second)
	}
}

func endOfSession(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		log.Debugf("session ended: reason=%v", err)
		return nil
	}
	return err
}

// nextPath reads one path, stripping whitespace and the quotes terminals add
// to dragged-in files.
func (s *Session) nextPath(prompt string) (string, error) {
	line, err := s.Reader.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "quit" || line == "exit" {
		return "", errQuit
	}
	return unquote(line), nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Compare loads both images and returns the directive that turns the first
// into the second, along with the mapping it encodes.
func (s *Session) Compare(first, second string) (directive.Directive, *differ.Mapping, error) {
	load := s.Load
	if load == nil {
		load = LoadGrid
	}

	a, err := load(first)
	if err != nil {
		return "", nil, err
	}
	b, err := load(second)
	if err != nil {
		return "", nil, err
	}

	m, err := differ.Diff(a, b, differ.WithPolicy(s.Policy))
	if err != nil {
		return "", nil, fmt.Errorf("failed to compare %s to %s: %w", second, first, err)
	}
	return directive.Encode(m), m, nil
}

// handle runs one comparison and reports every outcome. Nothing here ends the
// session.
func (s *Session) handle(ctx context.Context, first, second string) {
	d, m, err := s.Compare(first, second)
	if err != nil {
		s.reportCompareError(err)
		return
	}

	if c := m.Conflicts(); len(c) > 0 {
		log.Warnf("%d source colors change into more than one color; kept the %s seen", len(c), s.Policy)
		fmt.Fprintln(s.Out, s.styles.warn.Render(fmt.Sprintf(
			"Warning: %d source colors change into more than one color. The %s one seen is used.", len(c), s.Policy)))
	}

	s.deliver(d, first, second)

	if s.Summary {
		output.WriteSummary(s.Out, m, s.Color)
	}

	rec := output.Record{Directive: d, First: first, Second: second, Time: s.Now()}
	for _, sink := range s.Sinks {
		loc, err := sink.Save(ctx, rec)
		if err != nil {
			log.WithError(err).Warn("save failed")
			fmt.Fprintln(s.Out, s.styles.warn.Render("Saving failed: "+err.Error()))
			continue
		}
		fmt.Fprintf(s.Out, "Saved to %s\n", loc)
	}
}

func (s *Session) deliver(d directive.Directive, first, second string) {
	if s.Clipboard == nil {
		fmt.Fprintf(s.Out, "Compared '%s' to '%s'.\n", second, first)
		fmt.Fprintln(s.Out, d)
		return
	}

	err := s.Clipboard.Copy(d.String())
	switch {
	case err == nil:
		fmt.Fprintln(s.Out, s.styles.ok.Render(fmt.Sprintf(
			"Compared '%s' to '%s'. Directives copied to clipboard.", second, first)))
	case errors.Is(err, clipboard.ErrUnsupported):
		fmt.Fprintf(s.Out, "Compared '%s' to '%s'.\n", second, first)
		fmt.Fprintln(s.Out, s.styles.warn.Render("Your OS doesn't support copying to clipboard natively!"))
		fmt.Fprintln(s.Out, d)
	default:
		log.WithError(err).Warn("clipboard copy failed")
		fmt.Fprintf(s.Out, "Compared '%s' to '%s'.\n", second, first)
		fmt.Fprintln(s.Out, s.styles.warn.Render("Copying to clipboard failed: "+err.Error()))
		fmt.Fprintln(s.Out, d)
	}
}

func (s *Session) reportCompareError(err error) {
	var le *pixel.LoadError
	switch {
	case errors.Is(err, differ.ErrDimensionMismatch):
		log.Debugf("dimension mismatch: err=%v", err)
		fmt.Fprintln(s.Out, s.styles.fail.Render("Image sizes differ. Please use two images with the same dimensions."))
		fmt.Fprintln(s.Out, err)
	case errors.As(err, &le):
		log.Debugf("load failed: err=%v", err)
		fmt.Fprintln(s.Out, s.styles.fail.Render("Comparing failed!"))
		fmt.Fprintln(s.Out, err)
	default:
		log.WithError(err).Error("compare failed")
		fmt.Fprintln(s.Out, s.styles.fail.Render("Comparing failed!"))
		fmt.Fprintln(s.Out, err)
	}
}
