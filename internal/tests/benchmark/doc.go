// Package benchmark provides performance benchmarks for the extension.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Compare results:
//
//	benchstat old.txt new.txt
package benchmark
