package config

// Fake is an in-memory Settings implementation for tests.
type Fake struct {
	Debug        bool
	Implicits    []string
	FolderVers   bool
	FolderRoot   string
	ReleasePath  string
	ReleaseRoot  string
	ReleaseTypes []string
}

var _ Settings = (*Fake)(nil)

// DebugBindModules implements Settings.
func (f *Fake) DebugBindModules() bool { return f.Debug }

// ImplicitPackages implements Settings.
func (f *Fake) ImplicitPackages() []string { return f.Implicits }

// UseFolderVersions implements Settings.
func (f *Fake) UseFolderVersions() bool { return f.FolderVers }

// FolderVersionsRoot implements Settings.
func (f *Fake) FolderVersionsRoot() string { return f.FolderRoot }

// ReleasePackagesPath implements Settings.
func (f *Fake) ReleasePackagesPath() string { return f.ReleasePath }

// ReleasePackagesRoot implements Settings.
func (f *Fake) ReleasePackagesRoot() string { return f.ReleaseRoot }

// ReleasePackagesTypes implements Settings.
func (f *Fake) ReleasePackagesTypes() []string { return f.ReleaseTypes }
