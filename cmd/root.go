package cmd

import (
	"fmt"
	"os"

	"github.com/endorses/bsdmon/internal/pkg/cmdutil"
	"github.com/endorses/bsdmon/internal/pkg/constants"
	"github.com/endorses/bsdmon/internal/pkg/logger"
	"github.com/endorses/bsdmon/internal/pkg/report"
	"github.com/endorses/bsdmon/internal/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bsdmon",
	Short: "bsdmon prints a one-shot system snapshot",
	Long: fmt.Sprintf(`bsdmon %s - Point-in-time system monitor for FreeBSD and Linux

Samples CPU utilization (two tick samples one second apart), memory usage,
root filesystem usage, and non-loopback IPv4 interfaces, prints one
snapshot, and exits.`, version.GetVersion()),
	Version:      version.GetFullVersion(),
	SilenceUsage: true,
	RunE:         runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	opts := report.Options{
		SampleInterval: cmdutil.GetDurationConfig("sample_interval", constants.DefaultSampleInterval),
	}

	r, err := report.Collect(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("sampling cpu counters: %w", err)
	}
	r.Render(cmd.OutOrStdout())
	return nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Initialize structured logging
	logger.Initialize()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/bsdmon/config.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Priority order for config files:
		// 1. ~/.config/bsdmon/config.yaml
		// 2. ~/.config/bsdmon.yaml
		// 3. ~/.bsdmon.yaml
		viper.AddConfigPath(home + "/.config/bsdmon")
		viper.AddConfigPath(home + "/.config")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		if err := viper.ReadInConfig(); err != nil {
			viper.SetConfigName("bsdmon")
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("sample_interval", constants.DefaultSampleInterval)
	viper.SetDefault("log_level", constants.DefaultLogLevel)

	_ = viper.ReadInConfig()

	lvl, err := logger.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		logger.Warn("ignoring invalid log_level", "value", viper.GetString("log_level"))
	} else {
		logger.SetLevel(lvl)
	}
}
