package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// FlashLevel represents the severity of a flash message.
type FlashLevel int

const (
	FlashInfo FlashLevel = iota
	FlashWarn
	FlashErr
)

// How long each level stays on screen.
var flashTTL = map[FlashLevel]time.Duration{
	FlashInfo: 4 * time.Second,
	FlashWarn: 6 * time.Second,
	FlashErr:  8 * time.Second,
}

// FlashMessage is a transient notification.
type FlashMessage struct {
	Text    string
	Level   FlashLevel
	Expires time.Time
}

// FlashModel holds the latest notification. Newer messages replace older ones.
type FlashModel struct {
	mu     sync.RWMutex
	msg    *FlashMessage
	now    func() time.Time
	onPost func()
}

// NewFlashModel creates an empty flash model.
func NewFlashModel() *FlashModel {
	return &FlashModel{now: time.Now}
}

// SetOnPost registers fn to run after every new message, on the caller's
// goroutine.
func (f *FlashModel) SetOnPost(fn func()) { f.onPost = fn }

func (f *FlashModel) Info(msg string) { f.post(FlashInfo, msg) }
func (f *FlashModel) Warn(msg string) { f.post(FlashWarn, msg) }
func (f *FlashModel) Err(err error)   { f.post(FlashErr, err.Error()) }

func (f *FlashModel) post(level FlashLevel, text string) {
	f.mu.Lock()
	f.msg = &FlashMessage{Text: text, Level: level, Expires: f.now().Add(flashTTL[level])}
	f.mu.Unlock()
	if f.onPost != nil {
		f.onPost()
	}
}

// Current returns a copy of the live message, or nil once it has expired.
func (f *FlashModel) Current() *FlashMessage {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.msg == nil || f.now().After(f.msg.Expires) {
		return nil
	}
	m := *f.msg
	return &m
}

// FlashBar renders the live flash message on one line.
type FlashBar struct {
	*tview.TextView
	colors map[FlashLevel]tcell.Color
}

// NewFlashBar creates an empty flash bar.
func NewFlashBar(theme *Theme) *FlashBar {
	tv := tview.NewTextView().SetDynamicColors(true)
	tv.SetBackgroundColor(theme.Bg)
	return &FlashBar{
		TextView: tv,
		colors: map[FlashLevel]tcell.Color{
			FlashInfo: theme.Info,
			FlashWarn: theme.Warn,
			FlashErr:  theme.Error,
		},
	}
}

// Update shows msg, or clears the bar when msg is nil.
func (fb *FlashBar) Update(msg *FlashMessage) {
	fb.Clear()
	if msg != nil {
		_, _ = fmt.Fprintf(fb, " %s%s[-]", Tag(fb.colors[msg.Level]), tview.Escape(msg.Text))
	}
}
