package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stepmate/stepmate/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "stepmate",
	Short: "AI-assisted step-by-step todo list",
	Long: `StepMate turns a free-text goal into a small, actionable checklist.
A goal is decomposed into 6-10 concrete steps by a chat completion
model; tasks, settings, and completion statistics are kept as JSON
documents in a local data directory.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/stepmate/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/stepmate")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("STEPMATE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., STEPMATE_API_TIMEOUT_SECONDS for api.timeout_seconds
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
