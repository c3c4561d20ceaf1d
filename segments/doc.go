// Package segments provides a semi-open interval algebra.
//
// A Segment is the half-open interval [start, end) over any ordered type,
// with containment checks, boolean set operations and a total order. It is
// the building block for describing validity and data-quality windows over
// a sampling axis, such as the observing intervals of a detector.
//
// # Creating Segments
//
// New normalizes its bounds, so argument order does not matter:
//
//	s := segments.New(10.0, 5.0) // [5, 10)
//
// # Set Operations
//
// Intersection, union and difference each return a single segment:
//
//	a := segments.New(0.0, 10.0)
//	b := segments.New(5.0, 15.0)
//	a.Intersect(b) // [5, 10)
//	a.Union(b)     // [0, 15)
//	a.Sub(b)       // [0, 5)
//
// Union always returns the total span, even for disjoint inputs, and
// difference returns at most one piece; both are deliberate simplifications
// of true set semantics for a single-interval type.
package segments
