package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Joseda-hg/todo/internal/session"
	goerrors "github.com/go-errors/errors"
	"github.com/jesseduffield/gocui"
)

const (
	viewOutput = "output"
	viewInput  = "input"
)

type UI struct {
	gui     *gocui.Gui
	console *Console
	status  string
}

// RunFunc drives a session over the console the screen provides.
type RunFunc func(ctx context.Context, console session.Console) error

// Run hosts run inside a gocui screen: a scrolling output view above a
// one-line input view. The screen closes when run returns or on Ctrl-C,
// which ends the session's input.
func Run(ctx context.Context, run RunFunc) error {
	gui, err := gocui.NewGui(gocui.NewGuiOpts{OutputMode: gocui.OutputNormal})
	if err != nil {
		return err
	}
	defer gui.Close()

	ui := &UI{gui: gui}
	ui.console = NewConsole(ui.redraw)

	gui.SetManagerFunc(ui.layout)
	if err := ui.bindKeys(gui); err != nil {
		return err
	}

	result := make(chan error, 1)
	go func() {
		result <- run(ctx, ui.console)
		gui.Update(func(*gocui.Gui) error {
			return gocui.ErrQuit
		})
	}()

	loopErr := gui.MainLoop()
	ui.console.Close()
	runErr := <-result
	if loopErr != nil && !goerrors.Is(loopErr, gocui.ErrQuit) {
		return loopErr
	}
	return runErr
}

func (u *UI) bindKeys(gui *gocui.Gui) error {
	if err := gui.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, u.quit); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewInput, gocui.KeyEnter, gocui.ModNone, u.submitInput); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewInput, gocui.KeyPgup, gocui.ModNone, u.scrollUp); err != nil {
		return err
	}
	if err := gui.SetKeybinding(viewInput, gocui.KeyPgdn, gocui.ModNone, u.scrollDown); err != nil {
		return err
	}
	return nil
}

func (u *UI) layout(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	inputY0 := maxY - 3
	if inputY0 < 1 {
		return nil
	}

	outputView, err := gui.SetView(viewOutput, 0, 0, maxX-1, inputY0-1, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		outputView.Title = "To-Do"
		outputView.Wrap = true
		outputView.Autoscroll = true
	}
	if text := u.console.Drain(); text != "" {
		fmt.Fprint(outputView, text)
	}

	inputView, err := gui.SetView(viewInput, 0, inputY0, maxX-1, maxY-1, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		inputView.Editable = true
		inputView.Editor = gocui.DefaultEditor
	}
	inputView.Title = inputTitle(u.status)

	_, _ = gui.SetCurrentView(viewInput)
	gui.Cursor = true
	return nil
}

func inputTitle(status string) string {
	title := "Enter: submit, PgUp/PgDn: scroll, Ctrl-C: quit"
	if status != "" {
		title += " | " + status
	}
	return title
}

func (u *UI) redraw() {
	u.gui.Update(func(*gocui.Gui) error {
		return nil
	})
}

func (u *UI) submitInput(gui *gocui.Gui, view *gocui.View) error {
	line := strings.TrimRight(view.Buffer(), "\r\n")
	if u.console.Submit(line) {
		u.status = ""
	} else {
		u.status = "busy, input dropped"
	}
	if outputView, err := gui.View(viewOutput); err == nil {
		outputView.Autoscroll = true
	}
	// Recreated empty by the next layout pass.
	_ = gui.DeleteView(viewInput)
	return nil
}

func (u *UI) scrollUp(gui *gocui.Gui, _ *gocui.View) error {
	view, err := gui.View(viewOutput)
	if err != nil {
		return nil
	}
	view.Autoscroll = false
	_, height := view.Size()
	view.ScrollUp(max(height-1, 1))
	return nil
}

func (u *UI) scrollDown(gui *gocui.Gui, _ *gocui.View) error {
	view, err := gui.View(viewOutput)
	if err != nil {
		return nil
	}
	_, height := view.Size()
	view.ScrollDown(max(height-1, 1))
	return nil
}

func (u *UI) quit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}
