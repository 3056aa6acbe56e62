// Package config loads the application settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Settings is the TOML settings document.
type Settings struct {
	Profile ProfileSettings `toml:"profile"`
	Input   InputSettings   `toml:"input"`
	Stats   StatsSettings   `toml:"stats"`
	Logging LoggingSettings `toml:"logging"`
}

// ProfileSettings selects the binding profile.
type ProfileSettings struct {
	// Path is the .rkp profile file to load.
	Path string `toml:"path" validate:"required"`

	// Watch reloads the profile when the file changes.
	Watch bool `toml:"watch"`
}

// InputSettings tunes the coordinator.
type InputSettings struct {
	// Live starts the coordinator processing events immediately.
	Live bool `toml:"live"`

	// FlashMillis is the trigger highlight duration. Default 600.
	FlashMillis int `toml:"flash_ms" validate:"gte=50,lte=5000"`

	// QueueSize is the capacity of each event lane. Default 1024.
	QueueSize int `toml:"queue_size" validate:"gte=16,lte=65536"`
}

// StatsSettings controls usage statistics persistence.
type StatsSettings struct {
	// Enabled turns persistence on.
	Enabled bool `toml:"enabled"`

	// Path is the statistics database file.
	Path string `toml:"path" validate:"required_if=Enabled true"`
}

// LoggingSettings controls the logger.
type LoggingSettings struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns settings with all defaults applied.
func Default() Settings {
	return Settings{
		Input: InputSettings{
			Live:        true,
			FlashMillis: 600,
			QueueSize:   1024,
		},
		Logging: LoggingSettings{Level: "info"},
	}
}

// FlashDuration returns the flash timeout as a duration.
func (s InputSettings) FlashDuration() time.Duration {
	return time.Duration(s.FlashMillis) * time.Millisecond
}

// LoadSettings reads and validates the settings file at path. Fields the
// file omits keep their defaults.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	settings := Default()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks field constraints.
func (s Settings) Validate() error {
	err := validator.New().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fmt.Errorf("settings: field %s fails %q", first.Namespace(), first.Tag())
	}
	return fmt.Errorf("settings: %w", err)
}
