package segments

import (
	"cmp"
	"fmt"
)

// Segment is the semi-open interval [start, end) over an ordered type.
// The start bound is included, the end bound is not. Segments are immutable
// value types; the invariant start <= end holds for every Segment built
// through New.
type Segment[T cmp.Ordered] struct {
	start T
	end   T
}

// New creates a segment from two bounds. If a is greater than b the bounds
// are swapped, so the segment is always [min(a,b), max(a,b)). New never
// fails.
func New[T cmp.Ordered](a, b T) Segment[T] {
	if a > b {
		a, b = b, a
	}
	return Segment[T]{start: a, end: b}
}

// Start returns the inclusive lower bound.
func (s Segment[T]) Start() T {
	return s.start
}

// End returns the exclusive upper bound.
func (s Segment[T]) End() T {
	return s.end
}

// IsEmpty reports whether the segment covers no values.
func (s Segment[T]) IsEmpty() bool {
	return s.start == s.end
}

// Contains reports whether v lies within the segment. The end bound is
// excluded: a point exactly at End is not contained.
func (s Segment[T]) Contains(v T) bool {
	return s.start <= v && v < s.end
}

// ContainsSegment reports whether o lies entirely within s. Every segment
// contains itself, and an empty segment contains an equal empty segment.
func (s Segment[T]) ContainsSegment(o Segment[T]) bool {
	return s.start <= o.start && o.end <= s.end
}

// Intersect returns the overlap of s and o. When the segments do not
// overlap, the result is the empty segment anchored at the greater of the
// two starts, preserving where the non-overlap occurred.
func (s Segment[T]) Intersect(o Segment[T]) Segment[T] {
	start := max(s.start, o.start)
	end := min(s.end, o.end)
	if start >= end {
		return Segment[T]{start: start, end: start}
	}
	return Segment[T]{start: start, end: end}
}

// Union returns the total span of s and o. Disjoint inputs still produce a
// single covering segment; the gap between them is included.
func (s Segment[T]) Union(o Segment[T]) Segment[T] {
	return Segment[T]{start: min(s.start, o.start), end: max(s.end, o.end)}
}

// Sub returns the part of s not covered by o, as a single segment. When o
// splits s in two, only the empty segment anchored at s.Start is returned; a
// single-interval type cannot represent both pieces.
func (s Segment[T]) Sub(o Segment[T]) Segment[T] {
	// No overlap: s unchanged.
	if s.end <= o.start || o.end <= s.start {
		return s
	}
	// o fully covers s.
	if o.start <= s.start && s.end <= o.end {
		return Segment[T]{start: s.start, end: s.start}
	}
	// o overlaps the end of s.
	if s.start < o.start && o.start < s.end {
		return Segment[T]{start: s.start, end: o.start}
	}
	// o overlaps the start of s.
	if o.start < s.start && s.start < o.end && o.end < s.end {
		return Segment[T]{start: o.end, end: s.end}
	}
	return Segment[T]{start: s.start, end: s.start}
}

// Compare orders segments lexicographically by (start, end). It returns
// -1, 0 or +1 as s is ordered before, equal to, or after o.
func (s Segment[T]) Compare(o Segment[T]) int {
	if c := cmp.Compare(s.start, o.start); c != 0 {
		return c
	}
	return cmp.Compare(s.end, o.end)
}

// Less reports whether s is ordered strictly before o.
func (s Segment[T]) Less(o Segment[T]) bool {
	return s.Compare(o) < 0
}

func (s Segment[T]) String() string {
	return fmt.Sprintf("[%v, %v)", s.start, s.end)
}
