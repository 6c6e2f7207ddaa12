// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"
	"time"

	"github.com/lyrebird-cli/lyrebird/constant"
	"github.com/lyrebird-cli/lyrebird/filesystem"
	"github.com/lyrebird-cli/lyrebird/key"
	"github.com/lyrebird-cli/lyrebird/util"
	"github.com/lyrebird-cli/lyrebird/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Lyrebird)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Lyrebird)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

const (
	minTickInterval = 100 * time.Millisecond
	maxTickInterval = 200 * time.Millisecond
)

// TickInterval is the refresh cadence of the player loop.
// Values outside 100..200ms are clamped so a track end is never noticed late.
func TickInterval() time.Duration {
	d := time.Duration(viper.GetInt(key.TUITickInterval)) * time.Millisecond
	return util.Clamp(d, minTickInterval, maxTickInterval)
}

// Volume returns the configured initial volume in 0..100.
func Volume() int {
	return util.Clamp(viper.GetInt(key.PlayerVolume), 0, 100)
}

// VolumeStep returns the volume delta of a single key press.
func VolumeStep() int {
	return util.Max(viper.GetInt(key.PlayerVolumeStep), 1)
}

// SeekStep returns the seek delta of a single key press.
func SeekStep() time.Duration {
	return time.Duration(util.Max(viper.GetInt(key.PlayerSeekStep), 1)) * time.Second
}

// LyricsTimeout bounds a single remote lyrics lookup.
func LyricsTimeout() time.Duration {
	return time.Duration(util.Max(viper.GetInt(key.LyricsTimeout), 1)) * time.Second
}
