// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package reqcache

import (
	"context"
	"sync"
)

// Value that is loaded at most once. Views create one per request, so the
// cached value lives exactly as long as the request.
type Lazy[T any] struct {
	once  sync.Once
	load  func(ctx context.Context) (T, error)
	value T
	err   error
}

func NewLazy[T any](load func(ctx context.Context) (T, error)) *Lazy[T] {
	return &Lazy[T]{load: load}
}

// Load the value on the first call and return the cached result
// (including a failure) afterwards.
func (l *Lazy[T]) Get(ctx context.Context) (T, error) {
	l.once.Do(func() {
		l.value, l.err = l.load(ctx)
		l.load = nil
	})
	return l.value, l.err
}
