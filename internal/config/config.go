// Package config loads datepick settings from datepick.yaml and DATEPICK_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"datepick/internal/datelike"
	"datepick/internal/picker"
)

const (
	EnvPrefix    = "DATEPICK"
	EnvConfigDir = "DATEPICK_CONFIG_DIR"
	fileName     = "datepick"
)

// Settings are the resolved widget defaults.
type Settings struct {
	Language   string
	Type       string
	Format     string
	AutoClose  bool
	ShowAlways bool
	TimePicker bool
	// Ranges are [start, end] pairs; nil means unrestricted.
	Ranges [][]datelike.Value
	DB     string
	Theme  string
	// File is the config file that was read, if any.
	File string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("language", "en")
	v.SetDefault("type", "date")
	v.SetDefault("format", "yyyy-MM-dd")
	v.SetDefault("auto_close", true)
	v.SetDefault("show_always", false)
	v.SetDefault("timepicker", false)
	v.SetDefault("db", "~/.datepick/datepick.db")
	v.SetDefault("theme", "auto")
}

// Load reads settings. An explicit path must exist; otherwise
// $DATEPICK_CONFIG_DIR, ~/.datepick and the working directory are searched
// and a missing file is not an error.
func Load(path string) (Settings, error) {
	return load(viper.New(), path, os.Getenv)
}

func load(v *viper.Viper, path string, getenv func(string) string) (Settings, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(path) != "" {
		p, err := homedir.Expand(path)
		if err != nil {
			return Settings{}, fmt.Errorf("config path %q: %w", path, err)
		}
		v.SetConfigFile(p)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		if dir := strings.TrimSpace(getenv(EnvConfigDir)); dir != "" {
			if p, err := homedir.Expand(dir); err == nil {
				v.AddConfigPath(p)
			}
		}
		if p, err := homedir.Expand("~/.datepick"); err == nil {
			v.AddConfigPath(p)
		}
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	s := Settings{
		Language:   v.GetString("language"),
		Type:       v.GetString("type"),
		Format:     v.GetString("format"),
		AutoClose:  v.GetBool("auto_close"),
		ShowAlways: v.GetBool("show_always"),
		TimePicker: v.GetBool("timepicker"),
		Theme:      v.GetString("theme"),
		File:       v.ConfigFileUsed(),
	}
	db, err := homedir.Expand(v.GetString("db"))
	if err != nil {
		return Settings{}, fmt.Errorf("db path: %w", err)
	}
	s.DB = db

	ranges, err := rangesFrom(v.Get("ranges"))
	if err != nil {
		return Settings{}, err
	}
	s.Ranges = ranges
	return s, nil
}

// PickerOptions maps the settings onto controller options.
func (s Settings) PickerOptions(loc *time.Location) picker.Options {
	return picker.Options{
		Language:         s.Language,
		Type:             s.Type,
		ShowAlways:       s.ShowAlways,
		AutoClose:        s.AutoClose,
		SelectableRanges: s.Ranges,
		Location:         loc,
	}
}
