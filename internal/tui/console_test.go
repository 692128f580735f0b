package tui

import (
	"io"
	"testing"
	"time"
)

func TestPromptReturnsSubmittedLine(t *testing.T) {
	notified := 0
	console := NewConsole(func() { notified++ })

	if !console.Submit("view") {
		t.Fatalf("expected submit to be accepted")
	}
	line, err := console.Prompt("Enter a command: ")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if line != "view" {
		t.Fatalf("expected 'view', got %q", line)
	}
	if got := console.Drain(); got != "Enter a command: view\n" {
		t.Fatalf("unexpected transcript %q", got)
	}
	if notified == 0 {
		t.Fatalf("expected output to trigger a redraw")
	}
	if got := console.Drain(); got != "" {
		t.Fatalf("expected drain to reset output, got %q", got)
	}
}

func TestPromptWaitsForSubmit(t *testing.T) {
	console := NewConsole(nil)

	result := make(chan string, 1)
	go func() {
		line, err := console.Prompt("> ")
		if err != nil {
			result <- "error: " + err.Error()
			return
		}
		result <- line
	}()

	time.Sleep(10 * time.Millisecond)
	console.Submit("later")

	select {
	case line := <-result:
		if line != "later" {
			t.Fatalf("expected 'later', got %q", line)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("prompt did not return")
	}
}

func TestCloseEndsInput(t *testing.T) {
	console := NewConsole(nil)
	console.Close()
	console.Close()

	if _, err := console.Prompt("> "); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if console.Submit("too late") {
		t.Fatalf("expected submit after close to be rejected")
	}
}

func TestSubmitDropsWhenBacklogFull(t *testing.T) {
	console := NewConsole(nil)
	for i := 0; i < submitBacklog; i++ {
		if !console.Submit("x") {
			t.Fatalf("submit %d rejected early", i)
		}
	}
	if console.Submit("overflow") {
		t.Fatalf("expected submit beyond the backlog to be rejected")
	}
}

func TestPrintlnBuffersOutput(t *testing.T) {
	console := NewConsole(nil)
	console.Println("You have", 2, "tasks to do:")
	console.Println()

	if got := console.Drain(); got != "You have 2 tasks to do:\n\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestInputTitleShowsStatus(t *testing.T) {
	if got := inputTitle(""); got != "Enter: submit, PgUp/PgDn: scroll, Ctrl-C: quit" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := inputTitle("busy"); got != "Enter: submit, PgUp/PgDn: scroll, Ctrl-C: quit | busy" {
		t.Fatalf("unexpected title %q", got)
	}
}
