package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/blankpage/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/blankpage/internal/core/ports/driven"
)

// seqIDs returns an id generator producing doc-1, doc-2, ...
func seqIDs() driven.IDGenerator {
	var n atomic.Int64
	return driven.IDGeneratorFunc(func() string {
		return fmt.Sprintf("doc-%d", n.Add(1))
	})
}

// tickingClock returns a clock that advances one millisecond per call.
func tickingClock() func() time.Time {
	var n atomic.Int64
	base := time.UnixMilli(1_700_000_000_000)
	return func() time.Time {
		return base.Add(time.Duration(n.Add(1)) * time.Millisecond)
	}
}

// countingKV wraps a memory store and counts writes per key.
type countingKV struct {
	*memory.KVStore

	mu     sync.Mutex
	sets   map[string]int
	setErr error
	getErr error
}

func newCountingKV() *countingKV {
	return &countingKV{
		KVStore: memory.NewKVStore(),
		sets:    make(map[string]int),
	}
}

func (c *countingKV) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	err := c.getErr
	c.mu.Unlock()
	if err != nil {
		return "", false, err
	}
	return c.KVStore.Get(ctx, key)
}

func (c *countingKV) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	c.sets[key]++
	err := c.setErr
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.KVStore.Set(ctx, key, value)
}

func (c *countingKV) count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets[key]
}

func (c *countingKV) failWrites(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setErr = err
}
