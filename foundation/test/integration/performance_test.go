// File: performance_test.go
// Title: Cross-Module Performance Tests
// Description: Benchmarks of the configuration to text pipeline and a
//              concurrency check of a shared allocation budget.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-05 v0.1.0: Initial performance benchmarks
// - 2026-10-14 v0.2.0: Pipeline and budget benchmarks

package integration

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/msto63/textkit/foundation/core/config"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/foundation/utils/textbuf"
	"github.com/msto63/textkit/foundation/utils/utf8x"
)

func benchmarkInput(b *testing.B, scalars int) string {
	b.Helper()
	body, err := stringx.RandomString(scalars, stringx.Multilingual)
	if err != nil {
		b.Fatal(err)
	}
	return "\u3000\t " + body + " \n\u2029"
}

// BenchmarkPipeline builds, validates, trims, walks and releases a text
func BenchmarkPipeline(b *testing.B) {
	cfg, err := config.LoadFromString(pipelineConfig, config.FormatTOML)
	if err != nil {
		b.Fatal(err)
	}
	cfg.Set(textbuf.KeyMaxBytes, 1<<20)
	opts, err := textbuf.OptionsFromConfig(cfg, nil)
	if err != nil {
		b.Fatal(err)
	}

	for _, size := range []int{16, 1024, 16384} {
		s := benchmarkInput(b, size)
		b.Run(fmt.Sprintf("scalars=%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(s)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				txt, err := opts.NewString(s)
				if err != nil {
					b.Fatal(err)
				}
				txt.Trim()
				it, err := txt.Iterator()
				if err != nil {
					b.Fatal(err)
				}
				for _, ok := it.Next(); ok; _, ok = it.Next() {
				}
				txt.Release()
			}
		})
	}
}

// BenchmarkAllocators compares the heap allocator with a budgeted one
func BenchmarkAllocators(b *testing.B) {
	chunk := strings.Repeat("語", 64)
	allocators := map[string]func() textbuf.Allocator{
		"go":      func() textbuf.Allocator { return textbuf.GoAllocator{} },
		"limited": func() textbuf.Allocator { return textbuf.NewLimitedAllocator(nil, 1<<20) },
	}

	for name, newAllocator := range allocators {
		b.Run(name, func(b *testing.B) {
			a := newAllocator()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				txt := textbuf.Empty(a)
				for j := 0; j < 16; j++ {
					if err := txt.AppendString(chunk); err != nil {
						b.Fatal(err)
					}
				}
				txt.Release()
			}
		})
	}
}

// BenchmarkValidation compares strict and lenient validation of large input
func BenchmarkValidation(b *testing.B) {
	data := []byte(benchmarkInput(b, 1<<14))
	for _, policy := range []utf8x.SurrogatePolicy{utf8x.SurrogatesReject, utf8x.SurrogatesAllow} {
		b.Run(policy.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if !utf8x.ValidWithPolicy(data, policy) {
					b.Fatal("generated input is invalid")
				}
			}
		})
	}
}

// TestSharedBudgetUnderConcurrency runs many texts against one allocator
func TestSharedBudgetUnderConcurrency(t *testing.T) {
	const workers = 32
	a := textbuf.NewLimitedAllocator(nil, workers*256)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				txt, err := textbuf.NewString(a, "  worker text 語  ")
				if err != nil {
					t.Errorf("NewString() error = %v", err)
					return
				}
				if err := txt.AppendString("\u3000tail\n"); err != nil {
					t.Errorf("AppendString() error = %v", err)
					return
				}
				txt.Trim()
				if txt.String() != "worker text 語  \u3000tail" {
					t.Errorf("Trim() = %q", txt.String())
				}
				txt.Release()
			}
		}()
	}
	wg.Wait()

	s := a.Stats()
	if s.InUse != 0 {
		t.Errorf("InUse = %d after all texts were released", s.InUse)
	}
	if s.Peak > a.Limit() {
		t.Errorf("Peak %d exceeds limit %d", s.Peak, a.Limit())
	}
	if s.Denied != 0 {
		t.Errorf("Denied = %d", s.Denied)
	}
}
