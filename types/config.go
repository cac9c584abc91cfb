/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Config  string        `mapstructure:"config"`
	Data    DataConfig    `mapstructure:"data"`
	Display DisplayConfig `mapstructure:"display"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	// File is the data file path. Empty means the default lookup order.
	File string `mapstructure:"file"`
	// Format overrides the format inferred from the file extension.
	Format string `mapstructure:"format" validate:"omitempty,oneof=json yaml yml toml"`
}

// DisplayConfig holds list rendering settings
type DisplayConfig struct {
	Color    string `mapstructure:"color" validate:"required,oneof=auto always never"`
	Timezone string `mapstructure:"timezone"`
}
