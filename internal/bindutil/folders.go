package bindutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rohtau/rez/internal/config"
	"github.com/spf13/afero"
)

// DefaultFolderVersionsRoot is the fallback scan root when folder-based
// versions are enabled but no root is configured anywhere.
const DefaultFolderVersionsRoot = "/opt"

// FolderTest reports whether a directory is a valid install of the tool
// being bound, e.g. by checking that it contains the tool's executable.
// Bind modules supply it; the scanner never inspects folder contents
// itself.
type FolderTest func(path string) bool

// ScanAppFolders enumerates version installs of an app beneath an install
// root. The expected layout is <installRoot>/<appName>/<version folder>,
// e.g. /opt/houdini/hfs17.5.626. When the app folder itself passes the
// test it is treated as a single unversioned install and returned alone.
// With a nil test every immediate subdirectory counts.
//
// The returned order follows the underlying directory listing and is not
// guaranteed sorted or stable across platforms or filesystems.
func ScanAppFolders(fs afero.Fs, appName, installRoot string, test FolderTest) ([]string, error) {
	base := filepath.Clean(filepath.Join(installRoot, appName))

	info, err := fs.Stat(base)
	if err != nil || !info.IsDir() {
		return nil, &BaseDirError{App: appName, Path: base}
	}

	// The app may be installed directly in its folder with no version
	// subfolders, e.g. /opt/cmder.
	if test != nil && test(base) {
		return []string{base}, nil
	}

	entries, err := afero.ReadDir(fs, base)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", base, err)
	}

	var folders []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Clean(filepath.Join(base, entry.Name()))
		if test != nil && !test(path) {
			continue
		}
		folders = append(folders, path)
	}
	return folders, nil
}

// UseFolderVersions reports whether folder-based version discovery is
// active: either the caller passed the root argument explicitly (nil
// means absent) or configuration enables the mode.
func UseFolderVersions(arg *string, cfg config.Settings) bool {
	return arg != nil || cfg.UseFolderVersions()
}

// FolderVersionsRoot resolves the scan root for folder-based versions.
// An explicit non-empty argument always wins. Otherwise, when the config
// flag is set, the configured root applies, falling back to
// DefaultFolderVersionsRoot when it is blank. With the flag unset the
// argument comes back unchanged - possibly empty - and handling that is
// the caller's responsibility.
func FolderVersionsRoot(arg *string, cfg config.Settings) string {
	if arg != nil && *arg != "" {
		return *arg
	}
	if cfg.UseFolderVersions() {
		if root := cfg.FolderVersionsRoot(); strings.TrimSpace(root) != "" {
			return root
		}
		return DefaultFolderVersionsRoot
	}
	if arg == nil {
		return ""
	}
	return *arg
}
