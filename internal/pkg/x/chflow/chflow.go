// Package chflow has small channel helpers for the refresh loop: a receive
// that gives up when the context ends and a send that never blocks.
package chflow

import "context"

// Receive returns the next value from ch. ok is false when ctx is done first
// or ch is closed.
func Receive[T any](ctx context.Context, ch <-chan T) (v T, ok bool) {
	select {
	case <-ctx.Done():
		return v, false
	case v, ok = <-ch:
		return v, ok
	}
}

// TrySend puts data on ch unless that would block, and reports whether it did.
// On a 1-buffered channel this coalesces repeated signals into one.
func TrySend[T any](ch chan<- T, data T) bool {
	select {
	case ch <- data:
		return true
	default:
		return false
	}
}
