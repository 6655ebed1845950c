package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/plymouth-manager/internal/platform"
)

// Defaults for the system layout used by Plymouth on Debian-like distributions
const (
	DefaultInstallRoot      = "/usr/share/plymouth/themes"
	DefaultLegacyRoot       = "/lib/plymouth/themes"
	DefaultDescriptorExt    = ".plymouth"
	DefaultAlternativesName = "default.plymouth"
	DefaultAlternativesLink = "/usr/share/plymouth/themes/default.plymouth"
	DefaultPriority         = 100
	DefaultElevationHelper  = "pkexec"

	DefaultSearchEndpoint = "https://api.github.com/search/repositories"
	DefaultSearchTerm     = "plymouth theme"
	DefaultSearchTopic    = "plymouth-theme"
	DefaultSearchSort     = "stars"
	DefaultSearchTimeout  = 15

	DefaultBootDelayDir  = "/etc/systemd/system/display-manager.service.d"
	DefaultBootDelayFile = "plymouth-delay.conf"

	ConfigDirName  = "plymouth-manager"
	ConfigFileName = "config.yaml"
	EnvPrefix      = "PLYMOUTH_MANAGER"
)

// Activation policies
const (
	PolicyStrict  = "strict"
	PolicyLenient = "lenient"
)

// Alternatives registration modes
const (
	ModeInstallSet = "install-set"
	ModeSetOnly    = "set"
)

// Config is the process-wide, read-only configuration injected into every service
type Config struct {
	InstallRoot     string   `mapstructure:"install_root" yaml:"install_root"`
	ThemeRoots      []string `mapstructure:"theme_roots" yaml:"theme_roots"`
	ProtectedThemes []string `mapstructure:"protected_themes" yaml:"protected_themes"`
	DescriptorExt   string   `mapstructure:"descriptor_ext" yaml:"descriptor_ext"`
	ImageExts       []string `mapstructure:"image_exts" yaml:"image_exts"`
	RequireGraphics bool     `mapstructure:"require_graphics" yaml:"require_graphics"`
	ScratchDir      string   `mapstructure:"scratch_dir" yaml:"scratch_dir"`

	Elevation  ElevationConfig  `mapstructure:"elevation" yaml:"elevation"`
	Activation ActivationConfig `mapstructure:"activation" yaml:"activation"`
	Search     SearchConfig     `mapstructure:"search" yaml:"search"`
	BootDelay  BootDelayConfig  `mapstructure:"boot_delay" yaml:"boot_delay"`
}

// ElevationConfig selects the authorization-prompting helper
type ElevationConfig struct {
	Helper string `mapstructure:"helper" yaml:"helper"`
}

// ActivationConfig describes how a theme becomes the default splash
type ActivationConfig struct {
	Policy           string   `mapstructure:"policy" yaml:"policy"`
	Mode             string   `mapstructure:"mode" yaml:"mode"`
	AlternativesName string   `mapstructure:"alternatives_name" yaml:"alternatives_name"`
	AlternativesLink string   `mapstructure:"alternatives_link" yaml:"alternatives_link"`
	Priority         int      `mapstructure:"priority" yaml:"priority"`
	RebuildCommand   []string `mapstructure:"rebuild_command" yaml:"rebuild_command"`
}

// SearchConfig configures the remote and local theme catalogs
type SearchConfig struct {
	Endpoint       string `mapstructure:"endpoint" yaml:"endpoint"`
	DefaultTerm    string `mapstructure:"default_term" yaml:"default_term"`
	Topic          string `mapstructure:"topic" yaml:"topic"`
	Sort           string `mapstructure:"sort" yaml:"sort"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	LocalIndex     string `mapstructure:"local_index" yaml:"local_index"`
}

// BootDelayConfig locates the display manager override snippet
type BootDelayConfig struct {
	Dir           string   `mapstructure:"dir" yaml:"dir"`
	File          string   `mapstructure:"file" yaml:"file"`
	ReloadCommand []string `mapstructure:"reload_command" yaml:"reload_command"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	return Config{
		InstallRoot:     DefaultInstallRoot,
		ThemeRoots:      []string{DefaultInstallRoot, DefaultLegacyRoot},
		ProtectedThemes: []string{"text", "ubuntu-text", "details", "script"},
		DescriptorExt:   DefaultDescriptorExt,
		ImageExts:       []string{".png", ".jpg", ".jpeg", ".svg"},
		RequireGraphics: false,
		ScratchDir:      os.TempDir(),
		Elevation: ElevationConfig{
			Helper: DefaultElevationHelper,
		},
		Activation: ActivationConfig{
			Policy:           PolicyStrict,
			Mode:             ModeInstallSet,
			AlternativesName: DefaultAlternativesName,
			AlternativesLink: DefaultAlternativesLink,
			Priority:         DefaultPriority,
			RebuildCommand:   []string{"update-initramfs", "-u"},
		},
		Search: SearchConfig{
			Endpoint:       DefaultSearchEndpoint,
			DefaultTerm:    DefaultSearchTerm,
			Topic:          DefaultSearchTopic,
			Sort:           DefaultSearchSort,
			TimeoutSeconds: DefaultSearchTimeout,
		},
		BootDelay: BootDelayConfig{
			Dir:           DefaultBootDelayDir,
			File:          DefaultBootDelayFile,
			ReloadCommand: []string{"systemctl", "daemon-reload"},
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/plymouth-manager/config.yaml
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName), nil
}

// IsProtected reports whether name (case-folded) is a system fallback theme
func (c Config) IsProtected(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range c.ProtectedThemes {
		if strings.ToLower(p) == lower {
			return true
		}
	}
	return false
}

// Roots returns the scan roots, always including the install root
func (c Config) Roots() []string {
	roots := make([]string, 0, len(c.ThemeRoots)+1)
	seen := make(map[string]struct{})
	for _, r := range append([]string{c.InstallRoot}, c.ThemeRoots...) {
		if r == "" {
			continue
		}
		clean := filepath.Clean(r)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		roots = append(roots, clean)
	}
	return roots
}

// Validate checks values that services rely on
func (c Config) Validate() error {
	if !filepath.IsAbs(c.InstallRoot) {
		return fmt.Errorf("install_root must be absolute, got %q", c.InstallRoot)
	}
	if !strings.HasPrefix(c.DescriptorExt, ".") {
		return fmt.Errorf("descriptor_ext must start with a dot, got %q", c.DescriptorExt)
	}
	switch c.Activation.Policy {
	case PolicyStrict, PolicyLenient:
	default:
		return fmt.Errorf("unsupported activation.policy %q", c.Activation.Policy)
	}
	switch c.Activation.Mode {
	case ModeInstallSet, ModeSetOnly:
	default:
		return fmt.Errorf("unsupported activation.mode %q", c.Activation.Mode)
	}
	if len(c.Activation.RebuildCommand) == 0 {
		return fmt.Errorf("activation.rebuild_command is required")
	}
	if c.Search.TimeoutSeconds <= 0 {
		return fmt.Errorf("search.timeout_seconds must be positive")
	}
	if !filepath.IsAbs(c.BootDelay.Dir) {
		return fmt.Errorf("boot_delay.dir must be absolute, got %q", c.BootDelay.Dir)
	}
	if c.BootDelay.File == "" || strings.ContainsRune(c.BootDelay.File, filepath.Separator) {
		return fmt.Errorf("boot_delay.file must be a plain file name, got %q", c.BootDelay.File)
	}
	return nil
}

// WriteDefault writes the built-in configuration as YAML to path
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
