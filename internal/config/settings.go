package config

// Settings is the narrow read surface the discovery utilities consume.
// Keeping it an interface lets tests drive path and mode resolution with
// fakes instead of a loaded viper tree. Configuration is read-only shared
// state; nothing behind this interface is ever mutated by discovery.
type Settings interface {
	// DebugBindModules gates the diagnostic log channel for discovery.
	DebugBindModules() bool

	// ImplicitPackages returns configured "~name==value" entries.
	ImplicitPackages() []string

	// UseFolderVersions reports whether folder-based version discovery is
	// enabled by configuration.
	UseFolderVersions() bool

	// FolderVersionsRoot returns the configured default scan root, which
	// may be blank.
	FolderVersionsRoot() string

	ReleasePackagesPath() string
	ReleasePackagesRoot() string
	ReleasePackagesTypes() []string
}

var _ Settings = (*Config)(nil)

// DebugBindModules implements Settings.
func (c *Config) DebugBindModules() bool { return c.Bind.Debug }

// ImplicitPackages implements Settings.
func (c *Config) ImplicitPackages() []string { return c.Bind.ImplicitPackages }

// UseFolderVersions implements Settings.
func (c *Config) UseFolderVersions() bool { return c.Bind.UseFolderVersions }

// FolderVersionsRoot implements Settings.
func (c *Config) FolderVersionsRoot() string { return c.Bind.FolderVersionsRoot }

// ReleasePackagesPath implements Settings.
func (c *Config) ReleasePackagesPath() string { return c.Release.PackagesPath }

// ReleasePackagesRoot implements Settings.
func (c *Config) ReleasePackagesRoot() string { return c.Release.PackagesRoot }

// ReleasePackagesTypes implements Settings.
func (c *Config) ReleasePackagesTypes() []string { return c.Release.PackagesTypes }
