// Package taskgraph implements the task dependency graph engine behind the
// plan phase: extracting tasks from a markdown plan document, validating the
// dependency graph (missing references, cycles), computing a topological
// execution schedule in parallel waves, and deriving parallelization and
// time-savings metrics from that schedule.
//
// The package is purely synchronous and free of I/O: callers read the plan
// document and pass its text in, and own whatever they do with the rendered
// report. Every call builds a fresh graph value, so concurrent use needs no
// locking.
package taskgraph
