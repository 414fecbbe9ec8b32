// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"io"
	"sync"
)

// Console is the output sink shared by the command loop and the event
// renderer. Each call writes atomically; lines from the two writers may
// interleave but never tear.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole wraps out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Print writes s as is.
func (c *Console) Print(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, s)
}

// Printf formats and writes.
func (c *Console) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

// Println writes s followed by a newline.
func (c *Console) Println(s string) {
	c.Print(s + "\n")
}

// Info prints an informational line.
func (c *Console) Info(s string) {
	c.Println(okStyle.Render(s))
}

// Error prints an error line.
func (c *Console) Error(s string) {
	c.Println(errorStyle.Render(s))
}

// Write implements io.Writer so the console can back other writers.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}
