// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the genome-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/genome-engine/internal/secrets"
	"github.com/pdiddy/genome-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds database credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "genome-engine/0.1"

	defaultDBHost         = "mysql-eg-publicsql.ebi.ac.uk"
	defaultDBPort         = 3306
	defaultDBFallbackPort = 4157
	defaultDBUser         = "anonymous"
)

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the genome-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "genome-engine",
	Short: "Keyword search over Ensembl core databases",
	Long: `genome-engine resolves a species name to its Ensembl core database and
searches the gene or transcript annotation tables by keyword. Multiple
keywords combine under and/or semantics, and the consolidated records can
be printed as a table, JSON, or CSV, or saved to a file.

Species resolution consults the public vertebrate and plant registries;
the search itself runs against the public Ensembl MySQL service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./genome-engine.yaml or ~/.config/genome-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("genome-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "genome-engine"))
		}
	}

	viper.SetDefault("database.host", defaultDBHost)
	viper.SetDefault("database.port", defaultDBPort)
	viper.SetDefault("database.fallback_port", defaultDBFallbackPort)
	viper.SetDefault("search.limit", 0)
	viper.SetDefault("http.timeout", defaultTimeout)
	viper.SetDefault("http.user_agent", defaultUserAgent)

	viper.SetEnvPrefix("GENOME_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// httpConfig assembles HTTP settings from the timeout flag and config keys.
func httpConfig(cmd *cobra.Command) types.HTTPConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("http.timeout")
	}
	return types.HTTPConfig{
		Timeout:   timeout,
		UserAgent: viper.GetString("http.user_agent"),
	}
}

// databaseConfig assembles connection settings from config keys and loaded
// secrets. Explicit config values win over secrets.
func databaseConfig(timeout time.Duration) types.DatabaseConfig {
	user := secretDefault("mysql-user", viper.GetString("database.user"))
	if user == "" {
		user = defaultDBUser
	}
	return types.DatabaseConfig{
		Host:           viper.GetString("database.host"),
		Port:           viper.GetInt("database.port"),
		FallbackPort:   viper.GetInt("database.fallback_port"),
		User:           user,
		Password:       secretDefault("mysql-password", viper.GetString("database.password")),
		ConnectTimeout: timeout,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
