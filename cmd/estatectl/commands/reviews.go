package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matheus3301/estate/internal/collection"
	"github.com/matheus3301/estate/internal/listing"
	"github.com/matheus3301/estate/internal/review"
)

func reviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and write local listing reviews",
	}
	cmd.AddCommand(reviewsListCmd(), reviewsAddCmd(), reviewsClearCmd())
	return cmd
}

func reviewsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <listing-id>",
		Short: "List stored reviews of a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviews := collection.Of(appCtx.Store, collection.Reviews(args[0]),
				func(r review.Review) string { return r.User }).Load()
			w := cmd.OutOrStdout()
			if jsonOut {
				return outputJSON(w, reviews)
			}
			if len(reviews) == 0 {
				_, err := fmt.Fprintln(w, "No reviews yet.")
				return err
			}
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "RATING\tAUTHOR\tREVIEW")
			for _, r := range reviews {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", review.Stars(r.Rating), r.DisplayName(), r.Text)
			}
			return tw.Flush()
		},
	}
}

func reviewsAddCmd() *cobra.Command {
	var (
		rating int
		text   string
	)
	cmd := &cobra.Command{
		Use:   "add <listing-id>",
		Short: "Write a review for a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openListing(cmd, args[0]); err != nil {
				return err
			}
			r, err := appCtx.Detail.SubmitReview(text, rating, appCtx.Author)
			if err != nil {
				return err
			}
			if jsonOut {
				return outputJSON(cmd.OutOrStdout(), r)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s review by %s\n", review.Stars(r.Rating), r.DisplayName())
			return err
		},
	}
	cmd.Flags().IntVar(&rating, "rating", 0, "star rating, 1 to 5")
	cmd.Flags().StringVar(&text, "text", "", "review text")
	return cmd
}

func reviewsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <listing-id>",
		Short: "Delete every stored review of a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Clearing needs no backend round trip; the fetch is abandoned.
			appCtx.Detail.Open(cmd.Context(), args[0])
			defer appCtx.Detail.Close()
			return appCtx.Detail.ClearReviews()
		},
	}
}

// openListing loads id into the detail controller and waits for the result.
func openListing(cmd *cobra.Command, id string) error {
	select {
	case <-appCtx.Detail.Open(cmd.Context(), id):
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	}
	v := appCtx.Detail.Snapshot()
	if v.State == listing.Ready {
		return nil
	}
	if v.Err != nil {
		return fmt.Errorf("listing %s: %w", id, v.Err)
	}
	return fmt.Errorf("listing %s: %w", id, listing.ErrNotReady)
}
