// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package directive

import (
	"strings"

	"github.com/tfctl/dirgen/internal/differ"
)

const (
	// Prefix starts every directive.
	Prefix = "?replace"

	separator = ";"
	assign    = "="
)

// Directive is an encoded replace directive.
type Directive string

func (d Directive) String() string { return string(d) }

// Encode renders m in insertion order. A nil or empty mapping encodes to
// exactly Prefix.
func Encode(m *differ.Mapping) Directive {
	pairs := m.Pairs()

	var sb strings.Builder
	// prefix + len(pairs) * ";xxxxxxxx=xxxxxxxx"
	sb.Grow(len(Prefix) + len(pairs)*18)
	sb.WriteString(Prefix)
	for _, p := range pairs {
		sb.WriteString(separator)
		sb.WriteString(p.Source.Hex())
		sb.WriteString(assign)
		sb.WriteString(p.Target.Hex())
	}
	return Directive(sb.String())
}
