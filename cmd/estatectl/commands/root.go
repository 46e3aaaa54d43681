package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/matheus3301/estate/internal/app"
	"github.com/matheus3301/estate/internal/collection"
	"github.com/matheus3301/estate/internal/config"
	"github.com/matheus3301/estate/internal/contact"
	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/profile"
	"github.com/matheus3301/estate/internal/remote"
	"github.com/matheus3301/estate/internal/review"
	"github.com/matheus3301/estate/internal/wishlist"
)

// deps are the services a command can use, populated from app.Module.
type deps struct {
	fx.In

	Params   app.Params
	Config   *config.Config
	Store    *collection.Store
	Remote   *remote.Client
	Wishlist *wishlist.Controller
	Detail   *listing.DetailController
	Composer *contact.Composer
	Format   *listing.Formatter
	Author   review.Author
	Logger   *zap.Logger
}

var (
	profileName string
	apiURL      string
	jsonOut     bool

	fxApp  *fx.App
	appCtx deps
)

// Execute builds the command tree and runs it. The fx app started for the
// command is stopped even when the command fails.
func Execute(ctx context.Context) error {
	err := newRoot().ExecuteContext(ctx)
	if stopErr := stopApp(); err == nil {
		err = stopErr
	}
	return err
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "estatectl",
		Short:         "Browse listings and manage your wishlist and reviews",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(profile.DotEnvPath(), ".env"); err != nil {
				return err
			}
			name := profile.Resolve(profileName)
			if err := profile.ValidateName(name); err != nil {
				return err
			}

			fxApp = fx.New(
				app.Module(app.Params{Profile: name, Console: true, APIBaseURL: apiURL}),
				fx.Populate(&appCtx),
				fx.NopLogger,
			)
			if err := fxApp.Err(); err != nil {
				return err
			}
			startCtx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			return fxApp.Start(startCtx)
		},
	}

	root.PersistentFlags().StringVar(&profileName, "profile", "", "profile name (overrides config default)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "backend base URL (overrides config)")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")

	root.AddCommand(wishlistCmd(), reviewsCmd(), listingCmd(), contactCmd(), collectionsCmd())
	return root
}

func stopApp() error {
	if fxApp == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := fxApp.Stop(ctx)
	fxApp = nil
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
