package views

import (
	"strings"

	"github.com/rivo/tview"

	"github.com/matheus3301/estate/internal/review"
	"github.com/matheus3301/estate/internal/tui/ui"
)

// ReviewForm collects a star rating and review text.
type ReviewForm struct {
	*tview.Form
	text     *tview.InputField
	rating   *tview.DropDown
	stars    int
	onSubmit func(text string, rating int)
	onCancel func()
}

// NewReviewForm creates an empty review form.
func NewReviewForm(theme *ui.Theme) *ReviewForm {
	rf := &ReviewForm{}

	options := make([]string, 0, review.MaxRating)
	for n := review.MinRating; n <= review.MaxRating; n++ {
		options = append(options, strings.Repeat("★", n))
	}
	rf.rating = tview.NewDropDown().
		SetLabel("Rating ").
		SetOptions(options, func(_ string, index int) { rf.stars = index + 1 })
	rf.text = tview.NewInputField().
		SetLabel("Review ").
		SetFieldWidth(60)

	form := tview.NewForm().
		AddFormItem(rf.rating).
		AddFormItem(rf.text).
		AddButton("Submit", func() {
			if rf.onSubmit != nil {
				rf.onSubmit(rf.text.GetText(), rf.stars)
			}
		}).
		AddButton("Cancel", func() {
			if rf.onCancel != nil {
				rf.onCancel()
			}
		})
	form.SetBorder(true)
	form.SetTitle(" Write a review ")
	form.SetBorderColor(theme.Prompt)
	form.SetTitleColor(theme.Title)
	form.SetBackgroundColor(theme.Bg)
	form.SetFieldBackgroundColor(theme.Bg)
	form.SetLabelColor(theme.Key)
	form.SetCancelFunc(func() {
		if rf.onCancel != nil {
			rf.onCancel()
		}
	})

	rf.Form = form
	return rf
}

// Name implements ui.Hinter.
func (rf *ReviewForm) Name() string { return "review" }

// Hints implements ui.Hinter.
func (rf *ReviewForm) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Esc", Description: "Cancel"},
	}
}

// SetOnSubmit sets the callback for the Submit button. rating is 0 when no
// rating was picked.
func (rf *ReviewForm) SetOnSubmit(fn func(text string, rating int)) {
	rf.onSubmit = fn
}

// SetOnCancel sets the callback for Cancel and Esc.
func (rf *ReviewForm) SetOnCancel(fn func()) {
	rf.onCancel = fn
}

// Reset clears the form and focuses the rating.
func (rf *ReviewForm) Reset() {
	rf.text.SetText("")
	rf.rating.SetCurrentOption(-1)
	rf.stars = 0
	rf.SetFocus(0)
}
