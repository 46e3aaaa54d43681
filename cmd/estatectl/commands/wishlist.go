package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matheus3301/estate/internal/listing"
)

func wishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage saved listings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved listings in wishlist order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return printListings(cmd.OutOrStdout(), appCtx.Format, appCtx.Wishlist.List())
			},
		},
		&cobra.Command{
			Use:   "toggle <listing-id>",
			Short: "Save a listing, or remove it if already saved",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := wishlistEntry(cmd, args[0])
				if err != nil {
					return err
				}
				added, err := appCtx.Wishlist.Toggle(*s)
				if err != nil {
					return err
				}
				if jsonOut {
					return outputJSON(cmd.OutOrStdout(), map[string]any{"id": s.ID, "saved": added})
				}
				verb := "Removed"
				if added {
					verb = "Saved"
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", verb, s.Name, s.ID)
				return err
			},
		},
		&cobra.Command{
			Use:   "remove <listing-id>",
			Short: "Remove a listing from the wishlist",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return appCtx.Wishlist.Remove(args[0])
			},
		},
		&cobra.Command{
			Use:   "has <listing-id>",
			Short: "Report whether a listing is saved",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				member := appCtx.Wishlist.IsMember(args[0])
				if jsonOut {
					return outputJSON(cmd.OutOrStdout(), map[string]any{"id": args[0], "saved": member})
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), member)
				return err
			},
		},
	)
	return cmd
}

// wishlistEntry returns the stored entry for id, fetching it from the backend
// when it is not saved yet.
func wishlistEntry(cmd *cobra.Command, id string) (*listing.Summary, error) {
	for _, s := range appCtx.Wishlist.List() {
		if s.ID == id {
			return &s, nil
		}
	}
	s, err := appCtx.Remote.GetListing(cmd.Context(), id)
	if err != nil {
		return nil, fmt.Errorf("fetch listing %s: %w", id, err)
	}
	return s, nil
}
