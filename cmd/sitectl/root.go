package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"propellus-site/internal/app"
	"propellus-site/internal/config"
	"propellus-site/internal/infra/cms"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// options carries the viper instance shared by all subcommands.
type options struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	opts := &options{v: viper.New()}

	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Inspect and render the propellus site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initialize(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default ./sitectl.yaml when present)")
	root.PersistentFlags().String("strapi-url", "", "content repository base URL")
	root.PersistentFlags().String("media-base-url", "", "base URL for root-relative media")
	root.PersistentFlags().Duration("timeout", 10*time.Second, "timeout of one content read")
	root.PersistentFlags().String("site-config", "", "site composition file (default embedded)")

	root.AddCommand(newCheckCmd(opts), newRenderCmd(opts), newCarouselCmd())
	return root
}

func (o *options) initialize(cmd *cobra.Command) error {
	v := o.v
	def := cms.DefaultConfig()
	v.SetDefault("strapi_url", def.BaseURL)
	v.SetDefault("timeout", def.Timeout)

	for key, flag := range map[string]string{
		"strapi_url":     "strapi-url",
		"media_base_url": "media-base-url",
		"timeout":        "timeout",
		"site_config":    "site-config",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	// STRAPI_URL, STRAPI_API_KEY, MEDIA_BASE_URL, ...
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if o.cfgFile != "" {
		v.SetConfigFile(o.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("sitectl")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || o.cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// cmsConfig builds the content repository settings from flags, env and file.
func (o *options) cmsConfig() (cms.Config, error) {
	cfg := cms.DefaultConfig()
	cfg.BaseURL = strings.TrimRight(o.v.GetString("strapi_url"), "/")
	cfg.APIKey = o.v.GetString("strapi_api_key")
	cfg.MediaBaseURL = strings.TrimRight(o.v.GetString("media_base_url"), "/")
	if cfg.MediaBaseURL == "" {
		cfg.MediaBaseURL = cfg.BaseURL
	}
	cfg.Timeout = o.v.GetDuration("timeout")
	if err := cfg.Validate(); err != nil {
		return cms.Config{}, err
	}
	return cfg, nil
}

// build wires the site the same way the server does.
func (o *options) build() (*app.Components, error) {
	cfg, err := o.cmsConfig()
	if err != nil {
		return nil, err
	}

	var site *config.Site
	if path := o.v.GetString("site_config"); path != "" {
		site, err = config.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return app.Build(cfg, site, nil)
}
