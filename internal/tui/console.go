package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

const submitBacklog = 16

// Console connects the session goroutine to the gocui loop. Output is
// buffered until the layout drains it into the output view; submitted lines
// are handed to the next Prompt.
type Console struct {
	mu      sync.Mutex
	pending strings.Builder
	notify  func()

	lines     chan string
	done      chan struct{}
	closeOnce sync.Once
}

// NewConsole returns a console that calls notify whenever new output is
// waiting to be drained. notify may be nil.
func NewConsole(notify func()) *Console {
	return &Console{
		notify: notify,
		lines:  make(chan string, submitBacklog),
		done:   make(chan struct{}),
	}
}

func (c *Console) Prompt(text string) (string, error) {
	c.emit(text)
	select {
	case line := <-c.lines:
		c.emit(line + "\n")
		return line, nil
	case <-c.done:
		return "", io.EOF
	}
}

func (c *Console) Println(a ...any) {
	c.emit(fmt.Sprintln(a...))
}

// Submit queues a line of input. It never blocks the caller and reports
// false when the console is closed or the backlog is full.
func (c *Console) Submit(line string) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.lines <- line:
		return true
	default:
		return false
	}
}

// Drain returns the output written since the last call.
func (c *Console) Drain() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	text := c.pending.String()
	c.pending.Reset()
	return text
}

// Close ends input; pending and future Prompt calls return io.EOF.
func (c *Console) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Console) emit(text string) {
	c.mu.Lock()
	c.pending.WriteString(text)
	c.mu.Unlock()
	if c.notify != nil {
		c.notify()
	}
}
