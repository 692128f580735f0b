package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console is the line-oriented boundary the session talks through. Prompt
// blocks until a whole line is available and returns io.EOF once input ends.
type Console interface {
	Prompt(text string) (string, error)
	Println(a ...any)
}

type LineConsole struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{in: bufio.NewReader(in), out: out}
}

func (c *LineConsole) Prompt(text string) (string, error) {
	c.mu.Lock()
	fmt.Fprint(c.out, text)
	c.mu.Unlock()

	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *LineConsole) Println(a ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, a...)
}
