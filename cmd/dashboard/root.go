package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/config"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Personal dashboard API: tasks, XP progression, budget and view counters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", os.Getenv("APP_PROFILE"),
		"configuration profile (local, dev, qa, prod); defaults to $APP_PROFILE")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs",
		"directory holding base.yaml and the profile overlays")

	cmd.AddCommand(
		newServeCmd(opts),
		newProgressCmd(),
		newTokenCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// loadConfig resolves the layered configuration for the selected profile.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.profile == "" {
		return nil, errors.New("a profile is required: pass --profile or set APP_PROFILE (e.g. local, dev, qa, prod)")
	}
	cfg, err := config.Load(o.profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
