package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matheus3301/estate/internal/collection"
	"github.com/matheus3301/estate/internal/review"
)

type collectionInfo struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	ListingID string `json:"listingId,omitempty"`
	Records   int    `json:"records"`
}

func collectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List stored collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := appCtx.Store.Names()
			if err != nil {
				return err
			}
			infos := make([]collectionInfo, 0, len(names))
			for _, name := range names {
				info := collectionInfo{Name: name, Kind: "other"}
				switch id, ok := collection.ReviewsListingID(name); {
				case name == collection.Wishlist:
					info.Kind = "wishlist"
					info.Records = len(appCtx.Wishlist.List())
				case ok:
					info.Kind = "reviews"
					info.ListingID = id
					info.Records = len(collection.Of(appCtx.Store, name, func(r review.Review) string { return r.User }).Load())
				}
				infos = append(infos, info)
			}

			w := cmd.OutOrStdout()
			if jsonOut {
				return outputJSON(w, infos)
			}
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tKIND\tRECORDS")
			for _, i := range infos {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\n", i.Name, i.Kind, i.Records)
			}
			return tw.Flush()
		},
	}
}
