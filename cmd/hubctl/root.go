package main

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hubforge/hubctl/pkg/api"
	"github.com/hubforge/hubctl/pkg/auth"
	"github.com/hubforge/hubctl/pkg/config"
	"github.com/hubforge/hubctl/pkg/prompt"
)

// cliName determines config file locations and the env variable prefix.
const cliName = "hubctl"

// cli carries the collaborators shared by all subcommands, initialized once
// in the root command's PersistentPreRunE.
type cli struct {
	config  *config.Config
	client  *api.Client
	ui      *prompt.Prompter
	profile string
	dryRun  bool
	indent  int
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   cliName,
		Short: "hubctl - command-line client for the Hub cloud IoT platform",
		Long: `hubctl talks to the Hub cloud IoT platform: list and select devices,
manage locations and rooms, and keep per-profile defaults for the
things you use most.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
	}

	cmd.PersistentFlags().String("profile", "", "Configuration profile to use (env: HUBCTL_PROFILE)")
	cmd.PersistentFlags().String("token", "", "API token (env: HUBCTL_TOKEN); overrides the stored token")
	cmd.PersistentFlags().Int("indent", 0, "Indent width for JSON/YAML output")
	cmd.PersistentFlags().Bool("dry-run", false, "Build values interactively but do not call the API")

	cmd.AddCommand(newDevicesCmd(c))
	cmd.AddCommand(newLocationsCmd(c))
	cmd.AddCommand(newConfigCmd(c))
	cmd.AddCommand(newLoginCmd(c))
	cmd.AddCommand(newLogoutCmd(c))

	return cmd
}

// init loads configuration, resolves the API token, and wires the shared
// collaborators. Flag values lose to nothing; environment variables beat
// config file entries.
func (c *cli) init(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("HUBCTL")
	v.AutomaticEnv()
	if err := v.BindPFlag("profile", cmd.Flags().Lookup("profile")); err != nil {
		return err
	}
	if err := v.BindPFlag("token", cmd.Flags().Lookup("token")); err != nil {
		return err
	}

	c.profile = v.GetString("profile")
	if c.profile == "" {
		c.profile = "default"
	}

	configDir := filepath.Join(xdg.ConfigHome, cliName)
	conf, err := config.Load(config.LoadOptions{
		ConfigFilename:        filepath.Join(configDir, "config.yaml"),
		ManagedConfigFilename: filepath.Join(configDir, "config-managed.yaml"),
		ProfileName:           c.profile,
	})
	if err != nil {
		return err
	}
	c.config = conf

	token, err := auth.ResolveToken(v.GetString("token"), c.profile)
	if err != nil {
		return err
	}

	c.client = api.NewClient(&api.ClientConfig{
		BaseURL: conf.StringValue("apiUrl", api.DefaultBaseURL),
		Token:   token,
	})
	c.ui = prompt.NewPrompter(nil)

	c.dryRun, err = cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	c.indent, err = cmd.Flags().GetInt("indent")
	if err != nil {
		return err
	}
	if c.indent < 0 {
		return fmt.Errorf("indent must not be negative")
	}

	return nil
}
