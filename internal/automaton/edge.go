package automaton

import "fmt"

// EdgeKind distinguishes the three transition labels an NFA edge can carry.
type EdgeKind uint8

const (
	// EdgeExact consumes one input symbol equal to the edge symbol.
	EdgeExact EdgeKind = iota
	// EdgeWildcard consumes any one input symbol.
	EdgeWildcard
	// EdgeSilent consumes no input.
	EdgeSilent
)

// Edge is a transition label. Edges are comparable values: Exact(r) equals
// only Exact(r), Wildcard() only Wildcard(), Silent() only Silent().
type Edge struct {
	kind EdgeKind
	sym  rune
}

// Exact returns an edge matching exactly the symbol r.
func Exact(r rune) Edge { return Edge{kind: EdgeExact, sym: r} }

// Wildcard returns an edge matching any single symbol.
func Wildcard() Edge { return Edge{kind: EdgeWildcard} }

// Silent returns an edge that consumes no input.
func Silent() Edge { return Edge{kind: EdgeSilent} }

// Kind returns which of the three labels e is.
func (e Edge) Kind() EdgeKind { return e.kind }

// Symbol returns the symbol of an exact edge. ok is false for wildcard and
// silent edges.
func (e Edge) Symbol() (r rune, ok bool) {
	if e.kind != EdgeExact {
		return 0, false
	}
	return e.sym, true
}

// IsExact reports whether e matches a single named symbol.
func (e Edge) IsExact() bool { return e.kind == EdgeExact }

// IsWildcard reports whether e matches any symbol.
func (e Edge) IsWildcard() bool { return e.kind == EdgeWildcard }

// IsSilent reports whether e consumes no input.
func (e Edge) IsSilent() bool { return e.kind == EdgeSilent }

func (e Edge) String() string {
	switch e.kind {
	case EdgeExact:
		return fmt.Sprintf("%q", e.sym)
	case EdgeWildcard:
		return "*"
	case EdgeSilent:
		return "ε"
	default:
		return fmt.Sprintf("edge(%d)", e.kind)
	}
}

// edgeLess orders edges by kind, then symbol.
func edgeLess(a, b Edge) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	return a.sym < b.sym
}
