// Package lanes provides portable fixed-width, multi-lane numeric vectors.
//
// A Species pairs a lane element type with one of four fixed vector shapes
// (64, 128, 256 or 512 bits) and manufactures immutable Vec, Mask and
// Shuffle values of that species. Operations are applied lane-wise and
// always return new values; nothing is mutated in place.
//
// Basic usage:
//
//	sp := lanes.MustSpecies[int32](lanes.Shape128) // 4 lanes of int32
//
//	v, _ := sp.FromSlice(data, 0)
//	w, _ := lanes.Add(v, sp.Broadcast(10))
//	sum := lanes.ReduceSum(w)
//
// Operations that combine two values require identical species; mixing
// species is reported as an error rather than silently truncating. The
// reference semantics implemented here are the only semantics: an execution
// substrate is free to run the same lane-wise patterns with real vector
// instructions, but must preserve these results exactly.
package lanes
