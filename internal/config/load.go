package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the provided path. If path is empty, uses
// DefaultConfigPath. A missing file is not an error: built-in defaults apply,
// and PLYMOUTH_MANAGER_* environment variables override either source.
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("install_root", cfg.InstallRoot)
	v.SetDefault("theme_roots", cfg.ThemeRoots)
	v.SetDefault("protected_themes", cfg.ProtectedThemes)
	v.SetDefault("descriptor_ext", cfg.DescriptorExt)
	v.SetDefault("image_exts", cfg.ImageExts)
	v.SetDefault("require_graphics", cfg.RequireGraphics)
	v.SetDefault("scratch_dir", cfg.ScratchDir)
	v.SetDefault("elevation.helper", cfg.Elevation.Helper)
	v.SetDefault("activation.policy", cfg.Activation.Policy)
	v.SetDefault("activation.mode", cfg.Activation.Mode)
	v.SetDefault("activation.alternatives_name", cfg.Activation.AlternativesName)
	v.SetDefault("activation.alternatives_link", cfg.Activation.AlternativesLink)
	v.SetDefault("activation.priority", cfg.Activation.Priority)
	v.SetDefault("activation.rebuild_command", cfg.Activation.RebuildCommand)
	v.SetDefault("search.endpoint", cfg.Search.Endpoint)
	v.SetDefault("search.default_term", cfg.Search.DefaultTerm)
	v.SetDefault("search.topic", cfg.Search.Topic)
	v.SetDefault("search.sort", cfg.Search.Sort)
	v.SetDefault("search.timeout_seconds", cfg.Search.TimeoutSeconds)
	v.SetDefault("search.local_index", cfg.Search.LocalIndex)
	v.SetDefault("boot_delay.dir", cfg.BootDelay.Dir)
	v.SetDefault("boot_delay.file", cfg.BootDelay.File)
	v.SetDefault("boot_delay.reload_command", cfg.BootDelay.ReloadCommand)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.Activation.Policy = strings.ToLower(strings.TrimSpace(cfg.Activation.Policy))
	cfg.Activation.Mode = strings.ToLower(strings.TrimSpace(cfg.Activation.Mode))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
