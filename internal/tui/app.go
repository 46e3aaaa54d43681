package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/matheus3301/estate/internal/app"
	"github.com/matheus3301/estate/internal/bus"
	"github.com/matheus3301/estate/internal/config"
	"github.com/matheus3301/estate/internal/contact"
	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/remote"
	"github.com/matheus3301/estate/internal/review"
	"github.com/matheus3301/estate/internal/tui/keys"
	"github.com/matheus3301/estate/internal/tui/model"
	"github.com/matheus3301/estate/internal/tui/ui"
	"github.com/matheus3301/estate/internal/tui/views"
	"github.com/matheus3301/estate/internal/wishlist"
)

const (
	pageHome     = "listings"
	pageWishlist = "wishlist"
	pageListing  = "listing"
	pageReview   = "review"
	pageContact  = "contact"
	pageHelp     = "help"
)

// Deps are the controllers the TUI drives, as provided by app.Module.
type Deps struct {
	fx.In

	Params   app.Params
	Config   *config.Config
	Author   review.Author
	Bus      *bus.Bus
	Remote   *remote.Client
	Wishlist *wishlist.Controller
	Detail   *listing.DetailController
	Composer *contact.Composer
	Format   *listing.Formatter
	Logger   *zap.Logger
}

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	deps     Deps
	logger   *zap.Logger
	home     *model.Home
	flash    *ui.FlashModel
	registry *keys.Registry
	theme    *ui.Theme

	root        *tview.Flex
	pages       *ui.Pages
	crumbs      *ui.Crumbs
	menu        *ui.Menu
	profileInfo *ui.ProfileInfo
	prompt      *ui.Prompt
	flashBar    *ui.FlashBar
	statusBar   *views.StatusBar

	homeV     *views.HomeView
	wishV     *views.WishlistView
	listingV  *views.ListingView
	reviewF   *views.ReviewForm
	contactV  *views.ContactView
	helpV     *views.HelpView
	hinters   map[string]ui.Hinter
	focusable map[string]tview.Primitive

	promptActive bool
	ctx          context.Context
	cancel       context.CancelFunc
}

// NewApp creates the TUI application.
func NewApp(d Deps) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()

	a := &App{
		app:         tview.NewApplication(),
		deps:        d,
		logger:      d.Logger.With(zap.String("component", "tui")),
		home:        model.NewHome(d.Remote),
		flash:       ui.NewFlashModel(),
		registry:    keys.NewRegistry(),
		theme:       theme,
		pages:       ui.NewPages(),
		crumbs:      ui.NewCrumbs(theme),
		menu:        ui.NewMenu(theme, 5),
		profileInfo: ui.NewProfileInfo(theme),
		prompt:      ui.NewPrompt(theme),
		flashBar:    ui.NewFlashBar(theme),
		statusBar:   views.NewStatusBar(d.Params.Profile, d.Config.StoreBackend),
		homeV:       views.NewHomeView(theme, d.Format),
		wishV:       views.NewWishlistView(theme, d.Format),
		listingV:    views.NewListingView(theme, d.Format),
		reviewF:     views.NewReviewForm(theme),
		contactV:    views.NewContactView(theme),
		helpV:       views.NewHelpView(theme),
		ctx:         ctx,
		cancel:      cancel,
	}

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	return a
}

func (a *App) setupBindings() {
	bind := func(r rune, desc string, visible bool, fn func()) *keys.Action {
		return &keys.Action{Key: tcell.KeyRune, Rune: r, Description: desc, Visible: visible, Handler: fn}
	}

	a.registry.AddGlobal(bind(':', "Command", true, func() { a.activatePrompt(ui.PromptCommand) }))
	a.registry.AddGlobal(bind('/', "Filter", true, func() { a.activatePrompt(ui.PromptFilter) }))
	a.registry.AddGlobal(bind('w', "Wishlist", true, a.showWishlist))
	a.registry.AddGlobal(bind('?', "Help", true, func() { a.pages.Push(pageHelp) }))
	a.registry.AddGlobal(bind('q', "Quit", true, a.Stop))

	a.registry.AddView(pageHome, bind('t', "Toggle wishlist", false, func() {
		if s, ok := a.homeV.Selected(); ok {
			a.toggleWishlist(s)
		}
	}))
	a.registry.AddView(pageHome, bind('r', "Refresh", false, a.refreshHome))

	a.registry.AddView(pageWishlist, bind('d', "Remove", false, a.removeSelectedWish))
	a.registry.AddView(pageWishlist, bind('t', "Remove", false, a.removeSelectedWish))
	a.registry.AddView(pageWishlist, bind('r', "Refresh", false, a.renderWishlist))

	a.registry.AddView(pageListing, bind('t', "Toggle wishlist", false, func() {
		v := a.deps.Detail.Snapshot()
		if v.Listing == nil {
			a.flash.Warn("Listing is still loading")
			return
		}
		a.toggleWishlist(*v.Listing)
	}))
	a.registry.AddView(pageListing, bind('a', "Add review", false, a.showReviewForm))
	a.registry.AddView(pageListing, bind('x', "Clear reviews", false, a.clearReviews))
	a.registry.AddView(pageListing, bind('c', "Contact", false, a.showContact))
	a.registry.AddView(pageListing, bind('r', "Reload", false, func() {
		if id := a.deps.Detail.Snapshot().ListingID; id != "" {
			a.openListing(id)
		}
	}))

	for i, p := range contact.Providers() {
		p := p
		a.registry.AddView(pageContact, bind('1'+rune(i), p.Name(), false, func() { a.selectProvider(p) }))
	}
	a.registry.AddView(pageContact, bind('i', "Edit message", false, func() {
		a.app.SetFocus(a.contactV.Input())
	}))
}

func (a *App) setupCallbacks() {
	a.homeV.SetOnSelect(func(s listing.Summary) { a.openListing(s.ID) })
	a.wishV.SetOnSelect(func(s listing.Summary) { a.openListing(s.ID) })

	a.reviewF.SetOnSubmit(a.submitReview)
	a.reviewF.SetOnCancel(a.back)

	a.contactV.SetOnMessage(func(text string) {
		a.deps.Composer.SetMessage(text)
		a.renderContact()
	})
	a.contactV.SetOnLeaveInput(func() { a.app.SetFocus(a.contactV.Body()) })

	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.deactivatePrompt()
		if mode == ui.PromptFilter {
			a.home.SetFilter(text)
			a.pages.Push(pageHome)
			a.renderHome()
			return
		}
		a.runCommand(ParseCommand(text))
	})
	a.prompt.SetOnCancel(a.deactivatePrompt)
	a.flash.SetOnPost(func() { a.flashBar.Update(a.flash.Current()) })

	a.pages.SetOnChange(a.onStackChange)
	a.pages.SetOnLeave(func(name string) {
		switch name {
		case pageListing:
			a.deps.Detail.Close()
			a.crumbs.SetLabel(pageListing, "")
			a.statusBar.SetState("")
		case pageContact:
			a.deps.Composer.Hide()
			a.contactV.Reset()
		}
	})
}

func (a *App) setupLayout() {
	a.hinters = map[string]ui.Hinter{
		pageHome:     a.homeV,
		pageWishlist: a.wishV,
		pageListing:  a.listingV,
		pageReview:   a.reviewF,
		pageContact:  a.contactV,
		pageHelp:     a.helpV,
	}
	a.focusable = map[string]tview.Primitive{
		pageHome:     a.homeV,
		pageWishlist: a.wishV,
		pageListing:  a.listingV,
		pageReview:   a.reviewF,
		pageContact:  a.contactV.Input(),
		pageHelp:     a.helpV,
	}

	// The review form is centered on its own page.
	reviewModal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(a.reviewF, 9, 0, true).
			AddItem(nil, 0, 1, false), 80, 0, true).
		AddItem(nil, 0, 1, false)

	a.pages.AddPage(pageHome, a.homeV, true, false)
	a.pages.AddPage(pageWishlist, a.wishV, true, false)
	a.pages.AddPage(pageListing, a.listingV, true, false)
	a.pages.AddPage(pageReview, reviewModal, true, false)
	a.pages.AddPage(pageContact, a.contactV, true, false)
	a.pages.AddPage(pageHelp, a.helpV, true, false)

	header := tview.NewFlex().
		AddItem(a.profileInfo, 44, 0, false).
		AddItem(a.menu, 0, 1, false).
		AddItem(ui.NewLogo(a.theme), 28, 0, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 6, 0, false).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.flashBar, 1, 0, false).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(a.root, true)
	a.app.SetInputCapture(a.capture)

	a.pages.Reset(pageHome)
	a.renderProfile()
}

func (a *App) capture(event *tcell.EventKey) *tcell.EventKey {
	if a.promptActive {
		return event
	}
	if event.Key() == tcell.KeyCtrlC {
		a.Stop()
		return nil
	}

	current := a.pages.Current()
	if event.Key() == tcell.KeyEscape {
		a.back()
		return nil
	}

	// Let text input widgets and the review form handle all keys normally.
	if current == pageReview {
		return event
	}
	if _, ok := a.app.GetFocus().(*tview.InputField); ok {
		return event
	}

	if a.registry.HandleEvent(current, event) {
		return nil
	}
	return event
}

func (a *App) onStackChange(stack []string) {
	current := a.pages.Current()
	a.crumbs.Update(stack)
	if current == pageWishlist {
		a.renderWishlist()
	}

	var viewHints []ui.MenuHint
	if h, ok := a.hinters[current]; ok {
		viewHints = h.Hints()
	}
	global := a.registry.GlobalHints()
	globalHints := make([]ui.MenuHint, len(global))
	for i, h := range global {
		globalHints[i] = ui.MenuHint{Key: h.Key, Description: h.Description}
	}
	a.menu.Update(globalHints, viewHints)

	if p, ok := a.focusable[current]; ok {
		a.app.SetFocus(p)
	}
}

func (a *App) back() {
	if a.pages.Depth() <= 1 {
		if a.home.Filter() != "" {
			a.home.SetFilter("")
			a.renderHome()
		}
		return
	}
	a.pages.Pop()
}

func (a *App) activatePrompt(mode ui.PromptMode) {
	a.promptActive = true
	a.prompt.Activate(mode)
	a.root.ResizeItem(a.prompt, 3, 0)
	a.app.SetFocus(a.prompt)
}

func (a *App) deactivatePrompt() {
	a.promptActive = false
	a.root.ResizeItem(a.prompt, 0, 0)
	if p, ok := a.focusable[a.pages.Current()]; ok {
		a.app.SetFocus(p)
	}
}

func (a *App) runCommand(cmd Command) {
	if err := cmd.Validate(); err != nil {
		a.flash.Err(err)
		return
	}
	switch cmd.Name {
	case CmdOpen:
		a.openListing(cmd.Args)
	case CmdSearch:
		sections, err := model.ParseSearch(cmd.Args)
		if err != nil {
			a.flash.Err(err)
			return
		}
		a.home.Use(sections)
		a.pages.Push(pageHome)
		a.refreshHome()
	case CmdHome:
		a.home.Use(model.DefaultSections())
		a.home.SetFilter("")
		a.pages.Push(pageHome)
		a.refreshHome()
	case CmdWishlist:
		a.showWishlist()
	case CmdHelp:
		a.pages.Push(pageHelp)
	case CmdQuit:
		a.Stop()
	}
}

// refreshHome reloads the home sections in the background.
func (a *App) refreshHome() {
	a.statusBar.SetLoading(true)
	go func() {
		err := a.home.Load(a.ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Warn("home sections failed", zap.Error(err))
		}
		a.app.QueueUpdateDraw(func() {
			a.statusBar.SetLoading(false)
			if err != nil {
				a.flash.Warn("Some listings could not be loaded")
			}
			a.renderHome()
		})
	}()
}

func (a *App) openListing(id string) {
	a.pages.Push(pageListing)
	a.crumbs.SetLabel(pageListing, id)
	a.crumbs.Update(a.pages.Stack())
	done := a.deps.Detail.Open(a.ctx, id)
	a.renderListing()
	go func() {
		<-done
		a.app.QueueUpdateDraw(a.renderListing)
	}()
}

func (a *App) showWishlist() {
	a.pages.Push(pageWishlist)
}

func (a *App) toggleWishlist(s listing.Summary) {
	added, err := a.deps.Wishlist.Toggle(s)
	if err != nil {
		a.flash.Err(fmt.Errorf("wishlist: %w", err))
		return
	}
	if added {
		a.flash.Info("Saved " + s.Name + " to your wishlist")
	} else {
		a.flash.Info("Removed " + s.Name + " from your wishlist")
	}
	a.renderAnnotations()
}

func (a *App) removeSelectedWish() {
	s, ok := a.wishV.Selected()
	if !ok {
		return
	}
	if err := a.deps.Wishlist.Remove(s.ID); err != nil {
		a.flash.Err(fmt.Errorf("wishlist: %w", err))
		return
	}
	a.flash.Info("Removed " + s.Name + " from your wishlist")
	a.renderAnnotations()
}

func (a *App) showReviewForm() {
	if a.deps.Detail.Snapshot().State != listing.Ready {
		a.flash.Warn("Wait for the listing to load before reviewing it")
		return
	}
	a.reviewF.Reset()
	a.pages.Push(pageReview)
}

func (a *App) submitReview(text string, rating int) {
	_, err := a.deps.Detail.SubmitReview(text, rating, a.deps.Author)
	if err != nil {
		var ve *review.ValidationError
		if errors.As(err, &ve) {
			a.flash.Warn(ve.Error())
			return
		}
		a.flash.Err(err)
		return
	}
	a.flash.Info("Review added")
	a.pages.Pop()
	a.renderListing()
}

func (a *App) clearReviews() {
	if err := a.deps.Detail.ClearReviews(); err != nil {
		a.flash.Err(err)
		return
	}
	a.flash.Info("Reviews cleared")
	a.renderListing()
}

func (a *App) showContact() {
	v := a.deps.Detail.Snapshot()
	if v.Listing == nil {
		a.flash.Warn("Listing is still loading")
		return
	}
	if !contact.CanContact(*v.Listing, a.deps.Config.User.ID) {
		if a.deps.Config.User.ID == "" {
			a.flash.Warn("Set [user] id in config.toml to contact landlords")
		} else {
			a.flash.Warn("This is your own listing")
		}
		return
	}
	a.contactV.Reset()
	done := a.deps.Composer.Reveal(a.ctx, *v.Listing)
	a.pages.Push(pageContact)
	a.renderContact()
	go func() {
		<-done
		a.app.QueueUpdateDraw(a.renderContact)
	}()
}

func (a *App) selectProvider(p contact.Provider) {
	if err := a.deps.Composer.SelectProvider(p); err != nil {
		a.flash.Warn(err.Error())
		return
	}
	a.flash.Info(p.Label())
	a.renderContact()
}

func (a *App) renderHome() {
	a.homeV.Update(a.home.Sections(), a.home.Filter(), a.deps.Wishlist.IsMember)
}

func (a *App) renderWishlist() {
	a.wishV.Update(a.deps.Wishlist.List())
}

func (a *App) renderListing() {
	v := a.deps.Detail.Snapshot()
	extra := views.ListingExtras{Placeholder: a.deps.Config.AvatarPlaceholder}
	if v.Listing != nil {
		extra.Wished = a.deps.Wishlist.IsMember(v.Listing.ID)
		extra.CanContact = contact.CanContact(*v.Listing, a.deps.Config.User.ID)
		a.crumbs.SetLabel(pageListing, v.Listing.Name)
		a.crumbs.Update(a.pages.Stack())
	}
	a.listingV.Update(v, extra)
	a.statusBar.SetState(string(v.State))
}

func (a *App) renderContact() {
	s := a.deps.Composer.Snapshot()
	link := ""
	if s.CanOfferLinks() && s.Provider != "" {
		if l, err := a.deps.Composer.Link(); err == nil {
			link = l
		}
	}
	a.contactV.Update(s, link)
}

func (a *App) renderProfile() {
	a.profileInfo.Update(ui.ProfileData{
		Profile:  a.deps.Params.Profile,
		User:     a.deps.Config.User.Name,
		Backend:  a.deps.Config.StoreBackend,
		API:      a.deps.Config.APIBaseURL,
		Wishlist: len(a.deps.Wishlist.List()),
	})
}

// renderAnnotations redraws every view that shows wishlist membership.
func (a *App) renderAnnotations() {
	a.renderHome()
	a.renderWishlist()
	if a.deps.Detail.Snapshot().ListingID != "" {
		a.renderListing()
	}
	a.renderProfile()
}

// onEvent applies a bus event on the UI goroutine.
func (a *App) onEvent(evt bus.Event) {
	switch evt.Kind {
	case bus.ListingStateChanged, bus.ListingReviewsChanged:
		a.renderListing()
	case bus.WishlistChanged:
		a.renderAnnotations()
	case bus.ContactStateChanged:
		a.renderContact()
	}
}

func (a *App) subscribe() {
	sub := a.deps.Bus.Subscribe(64)
	go func() {
		defer sub.Close()
		for {
			select {
			case evt := <-sub.C:
				a.app.QueueUpdateDraw(func() { a.onEvent(evt) })
			case <-a.ctx.Done():
				return
			}
		}
	}()
}

func (a *App) startTicker() {
	ticker := time.NewTicker(time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.app.QueueUpdateDraw(func() {
					a.flashBar.Update(a.flash.Current())
					a.statusBar.Tick()
				})
			case <-a.ctx.Done():
				return
			}
		}
	}()
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.subscribe()
	a.startTicker()
	a.refreshHome()
	a.logger.Info("tui started")
	return a.app.Run()
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
