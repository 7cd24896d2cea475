package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hubforge/hubctl/pkg/output"
)

func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the merged configuration for the active profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}

			formatter := output.YAML(c.indent)
			if asJSON {
				formatter = output.JSON(c.indent)
			}
			rendered, err := formatter(c.config.Profile())
			if err != nil {
				return err
			}
			pterm.Println(rendered)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Render as JSON instead of YAML")

	cmd.AddCommand(newConfigResetCmd(c))

	return cmd
}

func newConfigResetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "reset [key]",
		Short: "Clear remembered defaults for the active profile",
		Long: `Clear remembered defaults stored by hubctl. With a key argument only
that key is cleared (across all profiles); without one the whole managed
entry for the active profile is removed. The user-edited config file is
never touched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := c.config.ResetManagedKey(args[0], nil); err != nil {
					return err
				}
				pterm.Success.Printfln("Cleared %q.", args[0])
				return nil
			}

			if err := c.config.ResetManagedProfile(c.profile); err != nil {
				return err
			}
			pterm.Success.Printfln("Cleared remembered defaults for profile %q.", c.profile)
			return nil
		},
	}
}
