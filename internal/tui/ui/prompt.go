package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PromptMode selects what a submitted prompt line means.
type PromptMode int

const (
	PromptCommand PromptMode = iota
	PromptFilter
)

var promptModes = map[PromptMode]struct{ label, title string }{
	PromptCommand: {":", " Command "},
	PromptFilter:  {"/", " Filter listings "},
}

const historySize = 32

// Prompt is the ':' and '/' input bar. Up and Down recall earlier commands.
type Prompt struct {
	*tview.InputField
	mode     PromptMode
	history  []string
	cursor   int
	onSubmit func(mode PromptMode, text string)
	onCancel func()
}

// NewPrompt creates a hidden prompt bar.
func NewPrompt(theme *Theme) *Prompt {
	p := &Prompt{InputField: tview.NewInputField()}
	p.SetBorder(true)
	p.SetBorderColor(theme.Prompt)
	p.SetBackgroundColor(theme.Bg)
	p.SetFieldBackgroundColor(theme.Bg)
	p.SetFieldTextColor(theme.Fg)
	p.SetLabelColor(theme.Key)
	p.SetDoneFunc(p.done)
	p.SetInputCapture(p.recall)
	return p
}

// SetOnSubmit sets the callback for Enter.
func (p *Prompt) SetOnSubmit(fn func(mode PromptMode, text string)) {
	p.onSubmit = fn
}

// SetOnCancel sets the callback for Esc and for an empty command.
func (p *Prompt) SetOnCancel(fn func()) {
	p.onCancel = fn
}

// Activate clears the bar and switches it to mode.
func (p *Prompt) Activate(mode PromptMode) {
	p.mode = mode
	p.cursor = len(p.history)
	p.SetText("")
	p.SetLabel(promptModes[mode].label)
	p.SetTitle(promptModes[mode].title)
}

// Mode returns the current prompt mode.
func (p *Prompt) Mode() PromptMode {
	return p.mode
}

func (p *Prompt) done(key tcell.Key) {
	text := strings.TrimSpace(p.GetText())
	p.SetText("")

	// An empty filter clears the current one; an empty command does nothing.
	submit := key == tcell.KeyEnter && (text != "" || p.mode == PromptFilter)
	if !submit {
		if (key == tcell.KeyEnter || key == tcell.KeyEscape) && p.onCancel != nil {
			p.onCancel()
		}
		return
	}
	if p.mode == PromptCommand {
		p.remember(text)
	}
	if p.onSubmit != nil {
		p.onSubmit(p.mode, text)
	}
}

func (p *Prompt) remember(cmd string) {
	if n := len(p.history); n > 0 && p.history[n-1] == cmd {
		return
	}
	p.history = append(p.history, cmd)
	if len(p.history) > historySize {
		p.history = p.history[len(p.history)-historySize:]
	}
}

func (p *Prompt) recall(ev *tcell.EventKey) *tcell.EventKey {
	if p.mode != PromptCommand || len(p.history) == 0 {
		return ev
	}
	switch ev.Key() {
	case tcell.KeyUp:
		if p.cursor > 0 {
			p.cursor--
		}
	case tcell.KeyDown:
		if p.cursor < len(p.history) {
			p.cursor++
		}
	default:
		return ev
	}
	if p.cursor == len(p.history) {
		p.SetText("")
	} else {
		p.SetText(p.history[p.cursor])
	}
	return nil
}
