// Package sim provides the disk-head scheduling engine for seek-sim.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - result.go: Result and the head cursor that does all seek accounting
//   - fcfs.go, sstf.go, scan.go: the four ordering policies
//   - scheduler.go: the Scheduler interface and the name registry
//
// # Contract
//
// FCFS, SSTF, SCAN and CSCAN are pure functions of their inputs. They never
// mutate the request slice, never return errors and are defined for every
// well-formed input, including an empty queue (empty order, zero total).
// Input validation belongs to callers (see sim/workload).
//
// # Sub-packages
//   - sim/trace/: per-move head trace and its summary
//   - sim/workload/: request parsing, YAML scenarios, random generation
//   - sim/report/: averages, comparison table, text chart, JSON report
package sim
