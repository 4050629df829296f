// Package config wires environment, config-file, and flag sources into a
// single precedence chain: flag > env > config file > default.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ytgrab/internal/dirs"
)

// Init wires Viper with config paths, env, and flag bindings. It is
// non-fatal: any errors are returned for optional handling by the caller.
func Init(root *cobra.Command) error {
	// A local .env can override the process environment for development
	// setups. Missing files are fine.
	_ = godotenv.Load()

	if cfgDir, err := dirs.ConfigDir(); err == nil {
		_ = dirs.Ensure(cfgDir)
		viper.AddConfigPath(cfgDir)
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	// Environment variables: YTGRAB_*
	viper.SetEnvPrefix("YTGRAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind root persistent flags to Viper keys
	_ = viper.BindPFlag("output_dir", root.PersistentFlags().Lookup("output-dir"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("extractor", root.PersistentFlags().Lookup("extractor"))

	// Read config file if present (ignore not found)
	_ = viper.ReadInConfig()

	return nil
}
