package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jalon-sh/jalon/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "jalon",
	Short: "Project tracker with critical-path scheduling",
	Long: `Jalon tracks a project's team, tasks, milestones, risks, and change
log, computes the critical path over the task dependency graph, and
broadcasts every project mutation to the team over a configurable
notification channel.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/jalon/config.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "project.yaml", "project definition file")
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
		viper.AddConfigPath("$HOME/.config/jalon")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("JALON")
	// Replace dots with underscores for nested keys in env vars
	// e.g., JALON_NOTIFICATIONS_CHANNEL for notifications.channel
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
