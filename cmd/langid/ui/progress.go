package ui

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Counter shows running progress for a stream whose length is unknown
// up front. Output is throttled and rewrites a single stderr line.
type Counter struct {
	label     string
	current   int
	startTime time.Time
	mu        sync.Mutex
	lastPrint time.Time
}

// NewCounter creates a progress counter with the given label.
func NewCounter(label string) *Counter {
	return &Counter{
		label:     label,
		startTime: time.Now(),
		lastPrint: time.Now(),
	}
}

// Set sets the current count.
func (c *Counter) Set(current int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = current
	c.print(false)
}

// Finish completes the counter and moves to a fresh line.
func (c *Counter) Finish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.print(true)
	fmt.Fprintf(os.Stderr, "\n")
}

func (c *Counter) print(force bool) {
	if !force && time.Since(c.lastPrint) < 100*time.Millisecond {
		return
	}
	c.lastPrint = time.Now()

	elapsed := time.Since(c.startTime)
	speed := 0.0
	if elapsed.Seconds() > 0 {
		speed = float64(c.current) / elapsed.Seconds()
	}

	if force {
		fmt.Fprintf(os.Stderr, "\r  %s: %d | %.1f/s | Done    ", c.label, c.current, speed)
	} else {
		fmt.Fprintf(os.Stderr, "\r  %s: %d | %.1f/s ", c.label, c.current, speed)
	}
}
