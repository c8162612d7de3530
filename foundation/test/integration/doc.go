// Package integration holds tests that cross foundation module boundaries.
//
// Package: integration
// Title: textkit Foundation Integration Tests
// Description: Verifies that configuration, logging, errors, utf8x, textbuf
//              and stringx agree with each other when used together.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-05 v0.1.0: Error standard checks across modules
// - 2026-10-14 v0.2.0: Configuration pipeline and trimming agreement
//
// Test Categories:
//
// Module Integration Tests (module_integration_test.go):
// - configuration → Options → Text → logger
// - textbuf and stringx produce the same trims and counts
// - iterator output against stringx.Reverse and SplitLines
//
// Error Integration Tests (error_integration_test.go):
// - code, severity, module and operation of errors raised by real calls
// - context preserved through tkerror.Wrap
//
// Performance Tests (performance_test.go):
// - end-to-end pipeline benchmarks
// - shared allocation budget under concurrency
//
// Running:
//
//	go test -v ./test/integration/
//	go test -v ./test/integration/ -bench=.
package integration
