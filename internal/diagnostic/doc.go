// Package diagnostic provides structured errors, warnings and notes produced
// while loading schemas and synthesizing members.
//
// Key capabilities:
//   - Schema errors with the offending type and value
//   - Warnings that never abort generation
//   - Aggregation across types generated concurrently
package diagnostic
