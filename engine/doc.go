// Package engine implements the parallel orchestrator and reader: the
// top-level entry points that run the analyzer, planner, strategy
// selector, and block pipeline across a worker pool and assemble (or
// disassemble) the container file defined in the container package.
package engine
