// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tfctl/dirgen/internal/log"
	"github.com/tfctl/dirgen/internal/pixel"
)

// ErrDimensionMismatch is matched by every *DimensionError.
var ErrDimensionMismatch = errors.New("image sizes differ")

// DimensionError reports two grids of different sizes.
type DimensionError struct {
	WidthA, HeightA int
	WidthB, HeightB int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("image sizes differ: %dx%d vs %dx%d", e.WidthA, e.HeightA, e.WidthB, e.HeightB)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// Policy decides which target survives when one source color changes into
// several different colors across the image.
type Policy int

const (
	// LastWins keeps the target seen last in row-major order.
	LastWins Policy = iota
	// FirstWins keeps the target seen first in row-major order.
	FirstWins
)

func (p Policy) String() string {
	switch p {
	case FirstWins:
		return "first"
	default:
		return "last"
	}
}

// ParsePolicy accepts "last" or "first" (case insensitive).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return LastWins, nil
	case "first":
		return FirstWins, nil
	}
	return LastWins, fmt.Errorf("unknown tie-break policy %q", s)
}

type options struct {
	policy Policy
}

// Option customizes Diff.
type Option func(*options)

// WithPolicy selects the tie-break policy. The default is LastWins.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// Diff scans a and b in row-major order and maps every source color whose
// pixel differs to the color it became. Identical grids yield an empty
// mapping. Grids of different sizes yield a *DimensionError.
func Diff(a, b pixel.Reader, opts ...Option) (*Mapping, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if a.Width() != b.Width() || a.Height() != b.Height() {
		return nil, &DimensionError{
			WidthA: a.Width(), HeightA: a.Height(),
			WidthB: b.Width(), HeightB: b.Height(),
		}
	}

	m := NewMapping()
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			pa, pb := a.At(x, y), b.At(x, y)
			if pa == pb {
				continue
			}
			m.changed++

			if prev, ok := m.Get(pa); ok && prev != pb {
				m.addConflict(pa)
				log.Tracef("conflict at (%d,%d): %s -> %s, had %s", x, y, pa.Hex(), pb.Hex(), prev.Hex())
				if o.policy == FirstWins {
					continue
				}
			}
			m.Set(pa, pb)
		}
	}

	log.Debugf("diff done: policy=%s changed=%d colors=%d conflicts=%d", o.policy, m.changed, m.Len(), len(m.conflicts))
	return m, nil
}
