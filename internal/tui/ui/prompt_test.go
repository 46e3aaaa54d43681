package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestPromptSubmitAndHistory(t *testing.T) {
	p := NewPrompt(DefaultTheme())
	var got []string
	cancelled := 0
	p.SetOnSubmit(func(_ PromptMode, text string) { got = append(got, text) })
	p.SetOnCancel(func() { cancelled++ })

	p.Activate(PromptCommand)
	p.SetText("  open L1 ")
	p.done(tcell.KeyEnter)
	p.Activate(PromptCommand)
	p.SetText("wishlist")
	p.done(tcell.KeyEnter)

	if len(got) != 2 || got[0] != "open L1" || got[1] != "wishlist" {
		t.Fatalf("submitted = %v", got)
	}

	p.Activate(PromptCommand)
	p.recall(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if p.GetText() != "wishlist" {
		t.Errorf("first Up = %q, want wishlist", p.GetText())
	}
	p.recall(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	p.recall(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if p.GetText() != "open L1" {
		t.Errorf("Up past oldest = %q, want open L1", p.GetText())
	}
	p.recall(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	p.recall(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if p.GetText() != "" {
		t.Errorf("Down past newest = %q, want empty", p.GetText())
	}

	p.SetText("")
	p.done(tcell.KeyEnter)
	p.done(tcell.KeyEscape)
	if cancelled != 2 {
		t.Errorf("cancelled = %d, want 2", cancelled)
	}
}

func TestPromptEmptyFilterSubmits(t *testing.T) {
	p := NewPrompt(DefaultTheme())
	var mode PromptMode = -1
	p.SetOnSubmit(func(m PromptMode, text string) {
		if text != "" {
			t.Errorf("text = %q, want empty", text)
		}
		mode = m
	})
	p.Activate(PromptFilter)
	p.done(tcell.KeyEnter)
	if mode != PromptFilter {
		t.Errorf("mode = %v, want filter", mode)
	}
	if p.GetLabel() != "/" {
		t.Errorf("label = %q", p.GetLabel())
	}
}
