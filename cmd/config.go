package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/types"
	"github.com/muesli/termenv"
	"github.com/spf13/viper"
)

const (
	configName = ".todo"
	envPrefix  = "TODO"
)

// cfgFile is the path to the configuration file.
var cfgFile string

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// flagBindings maps viper keys to persistent flag names.
var flagBindings = map[string]string{
	"config":        "config",
	"verbose":       "verbose",
	"json":          "json",
	"data.file":     "file",
	"data.format":   "format",
	"display.color": "color",
}

func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// InitConfig reads in config file and ENV variables if set, then populates
// and validates GlobalAppConfig.
func InitConfig() error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)                          // e.g., TODO_DATA_FILE
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Replace dots with underscores in env var names

	for key, name := range flagBindings {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	viper.SetDefault("display.color", "auto")
	viper.SetDefault("display.timezone", "")
	viper.SetDefault("data.file", "")
	viper.SetDefault("data.format", "")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		LogError("Using config file: "+viper.ConfigFileUsed(), nil)
	} else {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case cfgFile != "" && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)):
			return &ArgumentError{Msg: fmt.Sprintf("config file not found: %s", cfgFile), Err: err}
		case errors.As(err, &notFound):
			LogError("No config file found. Using defaults and environment variables.", nil)
		default:
			return fmt.Errorf("read config file %s: %w", viper.ConfigFileUsed(), err)
		}
	}

	GlobalAppConfig = types.AppConfig{}
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		return &ArgumentError{Msg: "invalid configuration", Err: err}
	}

	if GlobalAppConfig.Display.Color == "always" {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// colorEnabled resolves display.color against the terminal and NO_COLOR.
func colorEnabled() bool {
	switch GetConfig().Display.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		return ui.IsTerminal(os.Stdout)
	}
}
