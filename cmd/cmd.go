package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillcms/wayfind/internal/pkg/config"
	"github.com/quillcms/wayfind/pkg/urlutils"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "wayfind",
	Short: "Context-aware URL resolution for your site 🧭",
	Long: `Wayfind resolves logical, context-dependent references (a named page, an
image, a navigation link, an API endpoint) into concrete relative or
absolute URLs, honoring a configured sub-directory, a separate admin host,
versioned API schemes, and optional SSL.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config here, after cobra has parsed command line flags
		if err := config.InitConfig(); err != nil {
			fmt.Printf("error initializing config: %s\n", err)
			os.Exit(1)
		}

		cfg = config.Get()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Run the root command
func Run() error {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().String("config", "", "config file (default is $HOME/wayfind-config.yaml)")
	rootCmd.PersistentFlags().String("site-url", "", "absolute URL the site is served from, may include a sub-directory")
	rootCmd.PersistentFlags().String("admin-url", "", "absolute URL of a separately hosted admin interface")
	rootCmd.PersistentFlags().StringSlice("protected-slugs", []string{"ghost", "rss", "amp"}, "reserved path segments")
	rootCmd.PersistentFlags().String("static-image-prefix", urlutils.DefaultStaticImagePrefix, "path prefix under which stored images live")
	rootCmd.PersistentFlags().String("api-path-prefix", urlutils.DefaultAPIPrefix, "base path the versioned API is mounted on")
	rootCmd.PersistentFlags().Int("redirect-cache-max-age", 31536000, "max-age in seconds attached to 301 redirects")
	rootCmd.PersistentFlags().String("log-level", "info", "stdout log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json", false, "output logs in JSON")

	// Bind flags to viper
	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd.Execute()
}

// newResolver builds the resolver every command shares, bound to the
// current configuration.
func newResolver() (*urlutils.Resolver, error) {
	if cfg.SiteURL == "" {
		return nil, fmt.Errorf("site-url is required")
	}

	resolverConfig, err := cfg.ResolverConfig()
	if err != nil {
		return nil, err
	}

	return urlutils.New(resolverConfig), nil
}
