package assist

import (
	"strings"
	"sync"
)

// Buffer accumulates streamed fragments in the order they are appended.
// It is safe to read while a stream is still writing to it.
type Buffer struct {
	mu        sync.Mutex
	sb        strings.Builder
	fragments int
}

// Append adds a fragment; empty fragments are ignored
func (b *Buffer) Append(fragment string) {
	if fragment == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sb.WriteString(fragment)
	b.fragments++
}

// String returns everything appended so far
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

// Len returns the number of bytes appended so far
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Len()
}

// Fragments returns the number of non-empty fragments appended
func (b *Buffer) Fragments() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fragments
}
