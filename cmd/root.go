/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/esimdash/esimdash-cli/cmd/logger"
	"github.com/esimdash/esimdash-cli/internal"
	"github.com/esimdash/esimdash-cli/internal/api"
	"github.com/esimdash/esimdash-cli/internal/config"
	"github.com/esimdash/esimdash-cli/internal/session"
	"github.com/esimdash/esimdash-cli/lib/varsource"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cc "github.com/ivanpirog/coloredcobra"
)

var (
	cfgFile   string
	cfgViper  = config.New()
	cfg       *config.Config
	resolver  varsource.Resolver = varsource.NewDefault()
	errorText                    = color.New(color.FgRed).SprintFunc()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "esimdash",
	Short:         "esimdash: browse the ESIM service from the terminal or the browser",
	Version:       internal.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.Logger.Sync()

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Underline, NoExtraNewlines: true,
		Commands: cc.HiYellow,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorText("Error: "+err.Error()))
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) error {
	if cfg != nil {
		return nil
	}
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	if err := config.ReadFile(cfgViper, cfgFile); err != nil {
		return err
	}
	parsed, err := config.Parse(cmd.Context(), cfgViper, resolver)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = parsed
	logger.Logger.Debug("configuration loaded", zapConfig(cfg)...)
	return nil
}

func newAPI() api.API {
	return api.NewAPI(
		api.WithBaseURL(cfg.APIURL),
		api.WithVersion(internal.Version),
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(logger.Logger),
	)
}

func tokenStore() (*session.FileStore, error) {
	if cfg.TokenFile != "" {
		return session.NewFileStore(cfg.TokenFile), nil
	}
	path, err := session.DefaultTokenFile()
	if err != nil {
		return nil, fmt.Errorf("failed to locate token file: %w", err)
	}
	return session.NewFileStore(path), nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("esimdash:\nversion %s\ndate: %s\n", internal.Version, internal.Date))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ~/.esimdash/config.yml)")
	flags.String("api-url", api.DefaultAPIURL, "base URL of the ESIM service, accepts ${env:..}, ${file:..} and ${aws:..} references")
	flags.String("token-file", "", "where the session token is kept (default ~/.esimdash/token)")
	flags.Duration("timeout", api.DefaultTimeout, "timeout for requests to the ESIM service")

	_ = cfgViper.BindPFlag(config.KeyAPIURL, flags.Lookup("api-url"))
	_ = cfgViper.BindPFlag(config.KeyTokenFile, flags.Lookup("token-file"))
	_ = cfgViper.BindPFlag(config.KeyTimeout, flags.Lookup("timeout"))
}

func zapConfig(c *config.Config) []zap.Field {
	return []zap.Field{
		zap.String("api_url", c.APIURL),
		zap.String("listen", c.Listen),
		zap.String("token_file", c.TokenFile),
		zap.Bool("cookie_secure", c.CookieSecure),
		zap.Duration("timeout", c.Timeout),
	}
}
