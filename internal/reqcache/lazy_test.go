// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package reqcache

import (
	"context"
	"errors"
	"testing"
)

func TestLazy_LoadsOnce(t *testing.T) {
	calls := 0
	lazy := NewLazy(func(ctx context.Context) (map[string]string, error) {
		calls++
		return map[string]string{"p1": "project1"}, nil
	})
	for range 3 {
		value, err := lazy.Get(t.Context())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if value["p1"] != "project1" {
			t.Errorf("unexpected value %v", value)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 load, got %d", calls)
	}
}

func TestLazy_CachesFailure(t *testing.T) {
	calls := 0
	lazy := NewLazy(func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("boom")
	})
	if _, err := lazy.Get(t.Context()); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := lazy.Get(t.Context()); err == nil {
		t.Fatal("expected the cached error")
	}
	if calls != 1 {
		t.Errorf("expected 1 load, got %d", calls)
	}
}
