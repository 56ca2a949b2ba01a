package sequence

import (
	"strings"

	"go.trai.ch/zerr"
	"uniseq/internal/core/domain"
)

// View is a lazy, non-copying window over a parent sequence. Every access
// re-reads the parent; nothing is materialized. Views can window other
// views.
type View struct {
	parent  Sequence
	begin   int // 1-based, inclusive
	end     int // 1-based, inclusive
	inverse bool
}

// Length returns the number of compounds in the window.
func (v *View) Length() int {
	if v.end < v.begin {
		return 0
	}
	return v.end - v.begin + 1
}

// CompoundAt returns the compound at a 1-based position within the window.
// Positions outside [1, Length] and windows outside the parent both fail
// with domain.ErrPositionOutOfRange, surfaced on access.
func (v *View) CompoundAt(position int) (domain.Compound, error) {
	if position < 1 || position > v.Length() {
		return domain.Compound{}, zerr.With(domain.ErrPositionOutOfRange, "position", position)
	}
	if v.inverse {
		return v.parent.CompoundAt(v.end - position + 1)
	}
	return v.parent.CompoundAt(v.begin + position - 1)
}

// Alphabet returns the parent's alphabet.
func (v *View) Alphabet() domain.Alphabet {
	return v.parent.Alphabet()
}

// SubSequence returns a lazy window over this view.
func (v *View) SubSequence(begin, end int) *View {
	return &View{parent: v, begin: begin, end: end}
}

// Inverse returns a lazy reversed view over this view.
func (v *View) Inverse() *View {
	return &View{parent: v, begin: 1, end: v.Length(), inverse: true}
}

// String rebuilds the windowed sequence from the parent. Positions the
// parent cannot serve are skipped.
func (v *View) String() string {
	var b strings.Builder
	for i := 1; i <= v.Length(); i++ {
		c, err := v.CompoundAt(i)
		if err != nil {
			continue
		}
		b.WriteString(c.Value)
	}
	return b.String()
}

var _ Sequence = (*View)(nil)
