package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/radikecosa/postkit/internal/config"
	"github.com/radikecosa/postkit/internal/logger"
	"github.com/radikecosa/postkit/internal/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "postkit",
	Short: "Content tooling for the blog",
	Long: `postkit scaffolds and inspects the posts of a bilingual static blog.

New posts get generated front-matter (title, publish time, tags detected
from the title, locale and abbrlink) and are never written over an
existing file. Settings come from postkit.toml, the same file that holds
the site theme configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./postkit.toml, then $HOME/.config/postkit/postkit.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (default warn)")
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "postkit"))
		}
		viper.SetConfigType("toml")
		viper.SetConfigName("postkit")
	}

	viper.SetEnvPrefix("postkit")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	theme.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: failed to read config: %v\n", err)
		}
	}
}

func initLogger() {
	level := logLevel
	if level == "" {
		level = config.GetLogLevel()
	}
	if err := logger.Init(level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using warn\n", level)
		logger.Init("warn")
	}

	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", map[string]interface{}{"path": used})
	}
}
