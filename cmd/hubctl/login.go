package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hubforge/hubctl/pkg/auth"
	"github.com/hubforge/hubctl/pkg/prompt"
	"github.com/hubforge/hubctl/pkg/validation"
)

func newLoginCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store an API token for the active profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			token, err := prompt.AskString(c.ui, prompt.StringOptions{
				Message:  "API token",
				Validate: validation.Required(),
				Help:     "A personal access token generated in the Hub console.",
			})
			if err != nil {
				return err
			}

			if err := auth.SaveToken(c.profile, token); err != nil {
				return err
			}
			pterm.Success.Printfln("Token stored for profile %q.", c.profile)
			return nil
		},
	}
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API token for the active profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := auth.DeleteToken(c.profile); err != nil {
				return err
			}
			pterm.Success.Printfln("Token removed for profile %q.", c.profile)
			return nil
		},
	}
}
