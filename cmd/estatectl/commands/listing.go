package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matheus3301/estate/internal/contact"
	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/remote"
	"github.com/matheus3301/estate/internal/review"
)

func listingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing",
		Short: "Look up listings on the backend",
	}
	cmd.AddCommand(listingShowCmd(), listingSearchCmd())
	return cmd
}

type listingDetail struct {
	Listing    *listing.Summary `json:"listing"`
	Reviews    []review.Review  `json:"reviews"`
	Saved      bool             `json:"saved"`
	CanContact bool             `json:"canContact"`
}

func listingShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <listing-id>",
		Short: "Show a listing with its local reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openListing(cmd, args[0]); err != nil {
				return err
			}
			v := appCtx.Detail.Snapshot()
			d := listingDetail{
				Listing:    v.Listing,
				Reviews:    v.Reviews,
				Saved:      appCtx.Wishlist.IsMember(v.Listing.ID),
				CanContact: contact.CanContact(*v.Listing, appCtx.Config.User.ID),
			}
			w := cmd.OutOrStdout()
			if jsonOut {
				return outputJSON(w, d)
			}

			l, f := *v.Listing, appCtx.Format
			_, _ = fmt.Fprintf(w, "%s (%s)\n", l.Name, l.ID)
			_, _ = fmt.Fprintf(w, "  %s  %s  %s\n", listing.TypeLabel(l), f.Price(l), f.Discount(l))
			if l.Address != "" {
				_, _ = fmt.Fprintf(w, "  %s\n", l.Address)
			}
			_, _ = fmt.Fprintf(w, "  %s, %s, %s, %s\n",
				listing.Beds(l), listing.Baths(l), listing.ParkingLabel(l), listing.FurnishedLabel(l))
			if l.Description != "" {
				_, _ = fmt.Fprintf(w, "  %s\n", l.Description)
			}
			_, _ = fmt.Fprintf(w, "  Saved: %v  Reviews: %d\n", d.Saved, len(d.Reviews))
			for _, r := range d.Reviews {
				_, _ = fmt.Fprintf(w, "    %s %s: %s\n", review.Stars(r.Rating), r.DisplayName(), r.Text)
			}
			return nil
		},
	}
}

func listingSearchCmd() *cobra.Command {
	var (
		offer    bool
		typeName string
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := remote.Query{Offer: offer, Limit: limit}
			if typeName != "" {
				t, err := listing.ParseType(typeName)
				if err != nil {
					return err
				}
				q.Type = t
			}
			found, err := appCtx.Remote.SearchListings(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printListings(cmd.OutOrStdout(), appCtx.Format, found)
		},
	}
	cmd.Flags().BoolVar(&offer, "offer", false, "only listings with an offer")
	cmd.Flags().StringVar(&typeName, "type", "", "rent or sale")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")
	return cmd
}
