package bindutil

import (
	"os/exec"

	"github.com/spf13/afero"
)

// FindExe resolves the executable for a program name, e.g. "python".
// A non-empty explicit path is validated and returned unchanged: a
// missing path yields ExeNotFoundError, an existing path that is not a
// regular file yields NotAFileError. With no explicit path the system
// PATH is searched for name.
func FindExe(fs afero.Fs, name, explicit string) (string, error) {
	if explicit != "" {
		info, err := fs.Stat(explicit)
		if err != nil {
			return "", &ExeNotFoundError{Name: explicit}
		}
		if !info.Mode().IsRegular() {
			return "", &NotAFileError{Path: explicit}
		}
		return explicit, nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", &ExeNotFoundError{Name: name}
	}
	return path, nil
}
