package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/asaskevich/govalidator"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/quillcms/wayfind/pkg/urlutils"
)

// Config holds all configuration for the program, parsed from various
// sources. The `mapstructure` tags map the fields to the viper
// configuration.
type Config struct {
	SiteURL             string   `mapstructure:"site-url"`
	AdminURL            string   `mapstructure:"admin-url"`
	ProtectedSlugs      []string `mapstructure:"protected-slugs"`
	StaticImagePrefix   string   `mapstructure:"static-image-prefix"`
	APIPathPrefix       string   `mapstructure:"api-path-prefix"`
	RedirectCacheMaxAge int      `mapstructure:"redirect-cache-max-age"`

	// APIVersions comes from the config file only: string values are
	// aliases to other version names, map values map version types to path
	// segments.
	APIVersions map[string]any `mapstructure:"api-versions"`

	// API
	APIPort int `mapstructure:"api-port"`

	// Prometheus and metrics
	Prometheus       bool   `mapstructure:"prometheus"`
	PrometheusPrefix string `mapstructure:"prometheus-prefix"`

	// Logging
	LogLevel string `mapstructure:"log-level"`
	JSON     bool   `mapstructure:"json"`
}

var (
	config *Config
	once   sync.Once
)

// InitConfig initializes the configuration.
// Flags -> Env -> Config file, the first has precedence over the rest.
func InitConfig() error {
	var err error
	once.Do(func() {
		config = &Config{}

		// Check if a config file is provided via flag
		if configFile := viper.GetString("config"); configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			home, homeErr := os.UserHomeDir()
			if homeErr != nil {
				err = homeErr
				return
			}

			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName("wayfind-config")
		}

		viper.SetEnvPrefix("WAYFIND")
		replacer := strings.NewReplacer("-", "_", ".", "_")
		viper.SetEnvKeyReplacer(replacer)
		viper.AutomaticEnv()

		if readErr := viper.ReadInConfig(); readErr == nil {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}

		if err = viper.Unmarshal(config); err != nil {
			return
		}

		err = config.validate()
	})
	return err
}

// BindFlags binds the flags to the viper configuration.
// This is needed because viper doesn't support the same flag name across
// multiple commands.
func BindFlags(flagSet *pflag.FlagSet) {
	flagSet.VisitAll(func(flag *pflag.Flag) {
		viper.BindPFlag(flag.Name, flag)
	})
}

// Get returns the config struct.
func Get() *Config {
	return config
}

func (c *Config) validate() error {
	if c.SiteURL != "" && !govalidator.IsURL(c.SiteURL) {
		return fmt.Errorf("site-url %q is not a valid URL", c.SiteURL)
	}
	if c.AdminURL != "" && !govalidator.IsURL(c.AdminURL) {
		return fmt.Errorf("admin-url %q is not a valid URL", c.AdminURL)
	}
	return nil
}

// ResolverConfig converts the application configuration into the immutable
// resolver configuration, decoding the API version table.
func (c *Config) ResolverConfig() (urlutils.Config, error) {
	versions, err := decodeAPIVersions(c.APIVersions)
	if err != nil {
		return urlutils.Config{}, err
	}
	if versions == nil {
		versions = defaultAPIVersions()
	}

	return urlutils.Config{
		SiteURL:           c.SiteURL,
		AdminURL:          c.AdminURL,
		APIVersions:       versions,
		ProtectedSlugs:    c.ProtectedSlugs,
		StaticImagePrefix: c.StaticImagePrefix,
		APIPrefix:         c.APIPathPrefix,
	}, nil
}

func decodeAPIVersions(raw map[string]any) (map[string]urlutils.APIVersionEntry, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	table := make(map[string]urlutils.APIVersionEntry, len(raw))
	for name, value := range raw {
		switch v := value.(type) {
		case string:
			table[name] = urlutils.APIVersionEntry{Alias: v}
		case map[string]any:
			segments := make(map[string]string, len(v))
			for versionType, segment := range v {
				s, ok := segment.(string)
				if !ok {
					return nil, fmt.Errorf("api-versions: %s.%s is not a string", name, versionType)
				}
				segments[versionType] = s
			}
			table[name] = urlutils.APIVersionEntry{Segments: segments}
		case map[string]string:
			segments := make(map[string]string, len(v))
			for versionType, segment := range v {
				segments[versionType] = segment
			}
			table[name] = urlutils.APIVersionEntry{Segments: segments}
		default:
			return nil, fmt.Errorf("api-versions: unsupported entry %q", name)
		}
	}
	return table, nil
}

// defaultAPIVersions is the version scheme served when the config file does
// not specify one. v0.1 is kept as an alias for compatibility with callers
// that never pass a version.
func defaultAPIVersions() map[string]urlutils.APIVersionEntry {
	return map[string]urlutils.APIVersionEntry{
		"v0.1": {Alias: "v2"},
		"v2": {Segments: map[string]string{
			"admin":   "v2/admin",
			"content": "v2/content",
			"members": "v2/members",
		}},
		"v3": {Segments: map[string]string{
			"admin":   "v3/admin",
			"content": "v3/content",
			"members": "v3/members",
		}},
		"canary": {Segments: map[string]string{
			"admin":   "canary/admin",
			"content": "canary/content",
			"members": "canary/members",
		}},
	}
}
