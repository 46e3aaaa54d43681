package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHandleEventViewShadowsGlobal(t *testing.T) {
	r := NewRegistry()
	var got string
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'r', Description: "Refresh", Handler: func() { got = "global" }})
	r.AddView("listing", &Action{Key: tcell.KeyRune, Rune: 'r', Description: "Reload", Handler: func() { got = "view" }})

	ev := tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)
	if !r.HandleEvent("listing", ev) || got != "view" {
		t.Fatalf("listing view: got %q, want view", got)
	}
	if !r.HandleEvent("wishlist", ev) || got != "global" {
		t.Fatalf("wishlist view: got %q, want global", got)
	}
}

func TestHandleEventNoMatch(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'q', Handler: func() { t.Fatal("unexpected call") }})

	if r.HandleEvent("home", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Fatal("HandleEvent() = true for unbound key")
	}
}

func TestHintsKeepOrderAndSkipHidden(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal(&Action{Key: tcell.KeyEnter, Description: "Open", Visible: true})
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 't', Description: "Wishlist", Visible: true})
	r.AddGlobal(&Action{Key: tcell.KeyRune, Rune: 'z', Description: "Hidden"})
	r.AddView("home", &Action{Key: tcell.KeyRune, Rune: 'v', Description: "View only", Visible: true})

	got := r.GlobalHints()
	want := []Hint{{Key: "Enter", Description: "Open"}, {Key: "t", Description: "Wishlist"}}
	if len(got) != len(want) {
		t.Fatalf("ViewHints() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hint[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
