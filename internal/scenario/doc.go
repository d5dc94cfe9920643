// Package scenario runs declarative network-simulation documents:
// setup (nodes and links), an ordered list of steps, and an unordered
// list of post-run validations. A document decodes from YAML, or is
// constructed directly as a Scenario value — both paths produce the
// same in-memory representation.
//
// The single entry point is Run: one orchestrator, errors wrapped
// once at the boundary. A step or validator failure is recorded in the result
// rather than aborting the run, so later steps still execute and the
// result document is always complete.
package scenario
