package automaton

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// NFAState is a node of the edit-distance NFA: Pos pattern symbols have been
// accounted for and Errs edits have been charged.
type NFAState struct {
	Pos  int
	Errs int
}

func (s NFAState) String() string {
	return fmt.Sprintf("(%d,%d)", s.Pos, s.Errs)
}

// StateSet is a set of NFA states belonging to one automaton shape.
// Membership is a bitset indexed by Pos*(k+1)+Errs, which gives every set a
// canonical, order-independent identity (see Key).
//
// A StateSet shares its bits with copies of itself; use Clone before
// mutating a set that is owned elsewhere.
type StateSet struct {
	bits  *bitset.BitSet
	width int // k+1
}

func newStateSet(width, capacity int) StateSet {
	return StateSet{bits: bitset.New(uint(capacity)), width: width}
}

func (s StateSet) index(st NFAState) uint {
	return uint(st.Pos*s.width + st.Errs)
}

func (s StateSet) state(i uint) NFAState {
	return NFAState{Pos: int(i) / s.width, Errs: int(i) % s.width}
}

// Add inserts st and reports whether it was newly added.
func (s StateSet) Add(st NFAState) bool {
	i := s.index(st)
	if s.bits.Test(i) {
		return false
	}
	s.bits.Set(i)
	return true
}

// Contains reports whether st is a member.
func (s StateSet) Contains(st NFAState) bool {
	if s.bits == nil || st.Errs < 0 || st.Errs >= s.width || st.Pos < 0 {
		return false
	}
	return s.bits.Test(s.index(st))
}

// Len returns the number of members.
func (s StateSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Empty reports whether the set has no members.
func (s StateSet) Empty() bool { return s.Len() == 0 }

// States returns the members ordered by position, then error count.
func (s StateSet) States() []NFAState {
	if s.bits == nil {
		return nil
	}
	out := make([]NFAState, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, s.state(i))
	}
	return out
}

// Key returns a canonical encoding of the membership. Two sets of the same
// automaton have equal keys iff they contain the same states.
func (s StateSet) Key() string {
	if s.bits == nil {
		return ""
	}
	buf := make([]byte, 0, 2*s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		buf = binary.AppendUvarint(buf, uint64(i))
	}
	return string(buf)
}

// Equal reports whether s and o have the same members.
func (s StateSet) Equal(o StateSet) bool {
	return s.width == o.width && s.Key() == o.Key()
}

// Clone returns a copy that shares no bits with s.
func (s StateSet) Clone() StateSet {
	if s.bits == nil {
		return s
	}
	return StateSet{bits: s.bits.Clone(), width: s.width}
}

// union adds every member of o to s.
func (s StateSet) union(o StateSet) {
	if o.bits == nil {
		return
	}
	s.bits.InPlaceUnion(o.bits)
}

// Intersects reports whether s and o share at least one state.
func (s StateSet) Intersects(o StateSet) bool {
	if s.bits == nil || o.bits == nil {
		return false
	}
	return s.bits.IntersectionCardinality(o.bits) > 0
}

func (s StateSet) String() string {
	states := s.States()
	parts := make([]string, len(states))
	for i, st := range states {
		parts[i] = st.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
