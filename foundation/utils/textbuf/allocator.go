// File: allocator.go
// Title: Buffer Allocators
// Description: The Allocator contract used by Text plus two implementations:
//              GoAllocator on the Go heap and LimitedAllocator, which puts a
//              byte budget on a parent allocator and keeps usage counters.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: LimitedAllocator grows within the remaining budget

package textbuf

import (
	"math"
	"sync"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/log"
)

// MaxAlloc is the largest buffer any allocator in this package hands out
const MaxAlloc = math.MaxInt32

// Allocator provides the buffers a Text stores its bytes in.
//
// Alloc returns a buffer of length n; for n == 0 it may return nil.
// Resize returns a buffer of length n holding the first min(len(buf), n)
// bytes of buf; on error buf is left untouched and still owned by the
// caller. Free takes back a buffer obtained from Alloc or Resize.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Resize(buf []byte, n int) ([]byte, error)
	Free(buf []byte)
}

// DefaultAllocator is used when a nil Allocator is passed to a constructor
var DefaultAllocator Allocator = GoAllocator{}

// GoAllocator allocates on the Go heap. Free is a no-op and the garbage
// collector reclaims released buffers. Shrinking keeps the capacity.
type GoAllocator struct{}

// Alloc implements Allocator
func (GoAllocator) Alloc(n int) ([]byte, error) {
	if err := checkSize("Alloc", n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return make([]byte, n), nil
}

// Resize implements Allocator. Growing beyond the capacity at least doubles it.
func (GoAllocator) Resize(buf []byte, n int) ([]byte, error) {
	if err := checkSize("Resize", n); err != nil {
		return nil, err
	}
	if n <= cap(buf) {
		return buf[:n], nil
	}
	nb := make([]byte, n, growCap(cap(buf), n, MaxAlloc))
	copy(nb, buf)
	return nb, nil
}

// Free implements Allocator
func (GoAllocator) Free([]byte) {}

func checkSize(op string, n int) error {
	if n < 0 || n > MaxAlloc {
		return tkerrors.AllocationFailed(tkerrors.ModuleTextbuf, op, n, 0, MaxAlloc)
	}
	return nil
}

// growCap returns the capacity for a buffer that must hold n bytes: twice
// the old capacity when that fits under ceiling, n otherwise
func growCap(old, n, ceiling int) int {
	c := old * 2
	if c < n {
		c = n
	}
	if c > ceiling {
		c = n
	}
	return c
}

// Stats is a snapshot of a LimitedAllocator's counters. InUse and Peak
// count capacity in bytes.
type Stats struct {
	Allocs  int
	Resizes int
	Frees   int
	Denied  int
	InUse   int
	Peak    int
}

// LimitedAllocator enforces a byte budget on the capacity handed out by its
// parent. It is safe for concurrent use by several Texts.
type LimitedAllocator struct {
	parent Allocator
	limit  int
	logger *log.Logger

	mu    sync.Mutex
	stats Stats
}

// NewLimitedAllocator returns an allocator refusing to hold more than limit
// bytes of capacity. A nil parent means DefaultAllocator.
func NewLimitedAllocator(parent Allocator, limit int) *LimitedAllocator {
	if parent == nil {
		parent = DefaultAllocator
	}
	if limit < 0 {
		limit = 0
	}
	return &LimitedAllocator{parent: parent, limit: limit}
}

// SetLogger makes the allocator record refused requests at debug level
func (a *LimitedAllocator) SetLogger(logger *log.Logger) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger = logger
}

// Limit returns the budget in bytes
func (a *LimitedAllocator) Limit() int {
	return a.limit
}

// Stats returns a snapshot of the counters
func (a *LimitedAllocator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Alloc implements Allocator
func (a *LimitedAllocator) Alloc(n int) ([]byte, error) {
	if err := checkSize("Alloc", n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stats.InUse+n > a.limit {
		return nil, a.deny("Alloc", n)
	}
	buf, err := a.parent.Alloc(n)
	if err != nil {
		return nil, err
	}
	a.stats.Allocs++
	a.account(cap(buf))
	return buf, nil
}

// Resize implements Allocator. Shrinking is delegated to the parent.
// Growing allocates a new buffer from the parent whose capacity stays
// within the remaining budget, then frees the old one.
func (a *LimitedAllocator) Resize(buf []byte, n int) ([]byte, error) {
	if err := checkSize("Resize", n); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	old := cap(buf)
	if n <= old {
		nb, err := a.parent.Resize(buf, n)
		if err != nil {
			return nil, err
		}
		a.stats.Resizes++
		a.account(cap(nb) - old)
		return nb, nil
	}

	available := a.limit - (a.stats.InUse - old)
	if n > available {
		return nil, a.deny("Resize", n)
	}

	nb, err := a.parent.Alloc(growCap(old, n, available))
	if err != nil {
		return nil, err
	}
	nb = nb[:n]
	copy(nb, buf)
	if old > 0 {
		a.parent.Free(buf)
	}
	a.stats.Resizes++
	a.account(cap(nb) - old)
	return nb, nil
}

// Free implements Allocator
func (a *LimitedAllocator) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.stats.Frees++
	a.account(-cap(buf))
	a.parent.Free(buf)
}

// account must be called with mu held
func (a *LimitedAllocator) account(delta int) {
	a.stats.InUse += delta
	if a.stats.InUse > a.stats.Peak {
		a.stats.Peak = a.stats.InUse
	}
}

// deny must be called with mu held
func (a *LimitedAllocator) deny(op string, n int) error {
	a.stats.Denied++
	if a.logger != nil {
		a.logger.Debug("allocation denied", log.Fields{
			"op":        op,
			"requested": n,
			"in_use":    a.stats.InUse,
			"limit":     a.limit,
		})
	}
	return tkerrors.AllocationFailed(tkerrors.ModuleTextbuf, op, n, a.stats.InUse, a.limit)
}
