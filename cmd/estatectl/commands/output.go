package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/matheus3301/estate/internal/listing"
)

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// printListings writes a listing table, or JSON with --json.
func printListings(w io.Writer, f *listing.Formatter, entries []listing.Summary) error {
	if jsonOut {
		if entries == nil {
			entries = []listing.Summary{}
		}
		return outputJSON(w, entries)
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No listings.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tTYPE\tPRICE\tOFFER\tBEDS\tBATHS")
	for _, s := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, listing.TypeLabel(s), f.Price(s), f.Discount(s), listing.Beds(s), listing.Baths(s))
	}
	return tw.Flush()
}
