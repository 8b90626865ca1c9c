// Package bindutil discovers externally-installed software for bind
// modules: it locates executables, extracts structured versions from tool
// output, enumerates folder-based installs, and resolves install paths.
// Nothing here installs software or caches results; every call starts
// discovery from scratch.
package bindutil

import (
	"fmt"

	version "github.com/hashicorp/go-version"
)

// ExeNotFoundError reports that an executable could not be resolved,
// either because the explicit path does not exist or because a PATH
// search found nothing.
type ExeNotFoundError struct {
	Name string
}

func (e *ExeNotFoundError) Error() string {
	return fmt.Sprintf("could not find executable: %s", e.Name)
}

// NotAFileError reports an explicit executable path that exists but is
// not a regular file.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("not a file: %s", e.Path)
}

// ExecError reports a tool that ran but exited non-zero.
type ExecError struct {
	Exe      string
	ExitCode int
	Stderr   string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to execute %s: %s (error code %d)", e.Exe, e.Stderr, e.ExitCode)
}

// VersionParseError reports version text that could not be turned into a
// structured version. Raw carries the output line being parsed.
type VersionParseError struct {
	Raw string
	Err error
}

func (e *VersionParseError) Error() string {
	return fmt.Sprintf("failed to parse version from output %q: %v", e.Raw, e.Err)
}

func (e *VersionParseError) Unwrap() error { return e.Err }

// VersionRangeError reports a discovered version outside the allowed range.
type VersionRangeError struct {
	Version *version.Version
	Range   version.Constraints
}

func (e *VersionRangeError) Error() string {
	return fmt.Sprintf("found version %s is not within range %s", e.Version, e.Range)
}

// BaseDirError reports a missing or non-directory install base for
// folder-based version discovery.
type BaseDirError struct {
	App  string
	Path string
}

func (e *BaseDirError) Error() string {
	return fmt.Sprintf("%s base install path doesn't exist or is not a directory: %s", e.App, e.Path)
}
