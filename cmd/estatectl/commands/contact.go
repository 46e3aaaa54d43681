package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matheus3301/estate/internal/contact"
)

func contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Write to a listing's landlord",
	}
	cmd.AddCommand(contactLinkCmd())
	return cmd
}

func contactLinkCmd() *cobra.Command {
	var (
		providerName string
		message      string
	)
	cmd := &cobra.Command{
		Use:   "link <listing-id>",
		Short: "Print a webmail compose link for the landlord",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := contact.ParseProvider(providerName)
			if err != nil {
				return err
			}
			l, err := appCtx.Remote.GetListing(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("listing %s: %w", args[0], err)
			}
			if !contact.CanContact(*l, appCtx.Config.User.ID) {
				if appCtx.Config.User.ID == "" {
					return errors.New("set [user] id in config.toml to contact landlords")
				}
				return errors.New("this is your own listing")
			}

			composer := appCtx.Composer
			defer composer.Hide()
			select {
			case <-composer.Reveal(cmd.Context(), *l):
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
			composer.SetMessage(message)
			if err := composer.SelectProvider(p); err != nil {
				return err
			}
			link, err := composer.Link()
			if err != nil {
				return err
			}
			if jsonOut {
				return outputJSON(cmd.OutOrStdout(), map[string]string{
					"provider": string(p),
					"label":    p.Label(),
					"link":     link,
				})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
			return err
		},
	}
	cmd.Flags().StringVar(&providerName, "provider", string(contact.Gmail), "gmail, yahoo or outlook")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	return cmd
}
