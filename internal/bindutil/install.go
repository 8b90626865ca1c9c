package bindutil

import (
	"fmt"
	"path/filepath"

	"github.com/rohtau/rez/internal/config"
	"github.com/spf13/afero"
)

// ResolveInstallPath rewrites installPath into a type-specific
// subdirectory of the configured release root. It only applies when the
// requested path equals the configured release packages path, a package
// type was given, a release root is configured, and the type is one of
// the configured release types; every other branch returns installPath
// unchanged. An empty pkgType means no type was given.
func ResolveInstallPath(cfg config.Settings, installPath, pkgType string) string {
	if installPath != cfg.ReleasePackagesPath() {
		return installPath
	}
	if pkgType == "" {
		return installPath
	}
	root := cfg.ReleasePackagesRoot()
	if root == "" {
		return installPath
	}
	types := cfg.ReleasePackagesTypes()
	if len(types) == 0 {
		return installPath
	}
	for _, t := range types {
		if t == pkgType {
			return filepath.Clean(filepath.Join(root, pkgType))
		}
	}
	return installPath
}

// MakeDirs joins the given path segments and creates the resulting
// directory tree when it does not exist yet, returning the joined path.
func MakeDirs(fs afero.Fs, dirs ...string) (string, error) {
	path := filepath.Join(dirs...)
	if _, err := fs.Stat(path); err != nil {
		if err := fs.MkdirAll(path, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", path, err)
		}
	}
	return path, nil
}
