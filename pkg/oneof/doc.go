// Package oneof provides closed typed variant containers: values that hold
// exactly one member of a fixed, ordered set of types. A container pairs a
// tag with storage for the active member; narrowing peels one member off the
// set and leaves the residual set, broadening embeds a container into a
// verified superset.
//
// Highlights:
// - OneOf1..OneOf5: containers over ordered member sets of up to five types
// - First2/Second2/...: typed per-position constructors with no failure mode
// - NarrowFirst/...: extract one member or produce the residual container
// - New/Broaden/Get/Is: generic by-type sugar over the same operations
// - Cases/Match/Switch: exhaustive case-per-member handling
// - Equal/Clone/Err helpers gated on every member supporting the capability
// - Classify: match an error chain against the error-typed members of a set
//
// Containers are plain values: every operation is value-in/value-out, and a
// narrowed or broadened source should be discarded. Member sets must be
// duplicate-free; order is significant only as tag assignment. Two nominally
// distinct types with the same underlying type are distinct members, so a
// named wrapper type is the way to carry the same data under two tags.
//
// The typed per-position operations compile to field moves with constant tag
// arithmetic and cannot be misused. The generic by-type layer resolves
// membership and superset relations once per container type (or type pair)
// and treats a relation that does not hold as a defect: it panics with an
// error naming the missing relation between the two sets. Mismatched narrows
// are never defects; the residual container is an ordinary return value.
package oneof
