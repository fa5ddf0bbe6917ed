// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "github.com/tfctl/dirgen/internal/pixel"

// Pair is a single source to target substitution.
type Pair struct {
	Source pixel.Pixel
	Target pixel.Pixel
}

// Mapping is an insertion-ordered map of source colors to target colors. A
// key keeps the position of its first insertion even when its value is later
// overwritten. The zero value is an empty mapping ready to use.
type Mapping struct {
	index       map[pixel.Pixel]int
	pairs       []Pair
	conflicts   []pixel.Pixel
	conflictSet map[pixel.Pixel]struct{}
	changed     int
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{
		index:       map[pixel.Pixel]int{},
		conflictSet: map[pixel.Pixel]struct{}{},
	}
}

// Set records src -> dst, overwriting any existing target for src in place.
func (m *Mapping) Set(src, dst pixel.Pixel) {
	if m.index == nil {
		m.index = map[pixel.Pixel]int{}
	}
	if i, ok := m.index[src]; ok {
		m.pairs[i].Target = dst
		return
	}
	m.index[src] = len(m.pairs)
	m.pairs = append(m.pairs, Pair{Source: src, Target: dst})
}

// Get returns the target recorded for src.
func (m *Mapping) Get(src pixel.Pixel) (pixel.Pixel, bool) {
	if m == nil {
		return pixel.Pixel{}, false
	}
	i, ok := m.index[src]
	if !ok {
		return pixel.Pixel{}, false
	}
	return m.pairs[i].Target, true
}

// Len is the number of distinct source colors.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// Pairs returns a copy of the entries in insertion order.
func (m *Mapping) Pairs() []Pair {
	if m == nil {
		return nil
	}
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Conflicts lists, in first-seen order, the source colors that were observed
// changing into more than one distinct target.
func (m *Mapping) Conflicts() []pixel.Pixel {
	if m == nil {
		return nil
	}
	out := make([]pixel.Pixel, len(m.conflicts))
	copy(out, m.conflicts)
	return out
}

// Changed is the number of coordinates whose pixels differed.
func (m *Mapping) Changed() int {
	if m == nil {
		return 0
	}
	return m.changed
}

func (m *Mapping) addConflict(src pixel.Pixel) {
	if m.conflictSet == nil {
		m.conflictSet = map[pixel.Pixel]struct{}{}
	}
	if _, ok := m.conflictSet[src]; ok {
		return
	}
	m.conflictSet[src] = struct{}{}
	m.conflicts = append(m.conflicts, src)
}
