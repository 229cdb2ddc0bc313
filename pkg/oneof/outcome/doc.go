// Package outcome pairs a success value with a failure drawn from a closed
// oneof set. Result[T, E] replaces the open error slot of a conventional
// result with a container type, so the full list of ways an operation can
// fail is part of its signature and shrinks as failures are handled.
//
// Highlights:
// - Success/Fail: construct Result[T, E]
// - NarrowFirst2..NarrowFifth5: peel one failure member off the error side
// - Map/Then: transform successful values or compose result-returning steps
// - Try: call a function returning (Out, error) and classify the error
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - Chain: minimal fluent composition for same-type pipelines
//
// Every result carries an id and a creation timestamp stamped at
// construction. Narrowing the failure side re-wraps the residual without
// touching that envelope, so a result keeps its identity while its failure
// set shrinks.
package outcome
