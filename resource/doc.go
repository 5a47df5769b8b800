// Package resource provides global resource management for ripsgo.
//
// The Controller bounds memory held by concurrent barcode computations,
// limits how many runs execute at once, and rate-limits snapshot IO. It is
// shared between BatchRun and the persistence manager so one budget covers
// both.
package resource
