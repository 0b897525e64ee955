// Package txhooks defers side effects until the request transaction is
// finished.
package txhooks

import (
	"context"
	"sync"
)

// Hooks collects the callbacks registered while a transaction is open.
type Hooks struct {
	mu         sync.Mutex
	onCommit   []func()
	onRollback []func()
}

type contextKey struct{}

var hooksKey = contextKey{}

// WithHooks returns a context carrying a fresh Hooks.
func WithHooks(ctx context.Context) (context.Context, *Hooks) {
	h := &Hooks{}
	return context.WithValue(ctx, hooksKey, h), h
}

func fromContext(ctx context.Context) *Hooks {
	h, _ := ctx.Value(hooksKey).(*Hooks)
	return h
}

// AfterCommit registers fn to run once the transaction commits. Without a
// transaction in ctx, fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	h := fromContext(ctx)
	if h == nil {
		fn()
		return
	}
	h.mu.Lock()
	h.onCommit = append(h.onCommit, fn)
	h.mu.Unlock()
}

// AfterRollback registers fn to run if the transaction is rolled back.
// Without a transaction in ctx, fn is dropped.
func AfterRollback(ctx context.Context, fn func()) {
	h := fromContext(ctx)
	if h == nil {
		return
	}
	h.mu.Lock()
	h.onRollback = append(h.onRollback, fn)
	h.mu.Unlock()
}

// RunCommit runs the commit callbacks in registration order and discards the
// rollback ones.
func (h *Hooks) RunCommit() {
	run(h.take(true))
}

// RunRollback runs the rollback callbacks in registration order and discards
// the commit ones.
func (h *Hooks) RunRollback() {
	run(h.take(false))
}

func (h *Hooks) take(committed bool) []func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	fns := h.onRollback
	if committed {
		fns = h.onCommit
	}
	h.onCommit, h.onRollback = nil, nil
	return fns
}

func run(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}
