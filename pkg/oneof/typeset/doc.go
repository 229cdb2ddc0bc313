// Package typeset implements the membership algebra behind oneof containers:
// position lookup within an ordered member set, duplicate rejection, and
// subset mapping tables between two sets.
//
// Highlights:
// - Positions/IndexOf: member position within an ordered set
// - Mapping/Subset: injective index remap table from a set into a superset
// - Format: canonical "(T0, T1, ...)" rendering used in diagnostics
//
// Every result is resolved once per set (or per set pair) and cached under
// the caller-supplied key, never per value. The package reports relation
// failures as ordinary typed errors; deciding whether such a failure is a
// defect belongs to the caller.
package typeset
