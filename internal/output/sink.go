// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tfctl/dirgen/internal/directive"
	"github.com/tfctl/dirgen/internal/log"
)

// DefaultDir is where directives are written when nothing else is configured.
const DefaultDir = "output"

// Record is one generated directive and where it came from.
type Record struct {
	Directive directive.Directive
	First     string
	Second    string
	Time      time.Time
}

// Name returns <first>-<second>-<HHmmss>.txt, using the base names of the two
// image paths without their extensions.
func (r Record) Name() string {
	return fmt.Sprintf("%s-%s-%s.txt", stem(r.First), stem(r.Second), r.Time.Format("150405"))
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Sink persists a record and returns a human readable location.
type Sink interface {
	Save(ctx context.Context, rec Record) (string, error)
}

// DirError reports an output directory that could not be created.
type DirError struct {
	Dir string
	Err error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("failed to create output directory %s: %v", e.Dir, e.Err)
}

func (e *DirError) Unwrap() error { return e.Err }

// FileSink writes each directive to its own file in Dir.
type FileSink struct {
	Dir string
}

// NewFileSink creates dir if needed. A failure is a *DirError.
func NewFileSink(dir string) (*FileSink, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return nil, &DirError{Dir: dir, Err: err}
	}
	log.Debugf("output dir ready: path=%s", dir)
	return &FileSink{Dir: dir}, nil
}

// maxSuffix bounds the numbered names tried when a file already exists.
const maxSuffix = 1000

// Save implements Sink. It never overwrites: when the name is taken, a
// numbered name like a-b-150405-2.txt is used instead.
func (s *FileSink) Save(_ context.Context, rec Record) (string, error) {
	name := rec.Name()
	base := strings.TrimSuffix(name, ".txt")

	for n := 1; n <= maxSuffix; n++ {
		p := filepath.Join(s.Dir, name)
		err := writeNew(p, []byte(rec.Directive))
		if err == nil {
			log.Debugf("directive saved: path=%s", p)
			return p, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("failed to write directive file: %w", err)
		}
		log.Debugf("directive file exists: path=%s", p)
		name = fmt.Sprintf("%s-%d.txt", base, n+1)
	}

	return "", fmt.Errorf("failed to write directive file: no free name for %s in %s", rec.Name(), s.Dir)
}

// writeNew creates p exclusively and writes data to it.
func writeNew(p string, data []byte) error {
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:mnd
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
