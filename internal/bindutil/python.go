package bindutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/rohtau/rez/internal/executil"
)

const defaultPythonExe = "python"

// RunPythonCommand joins the given statements with "; " and executes them
// through the interpreter's -c flag. An empty exe falls back to "python"
// from the PATH. It reports whether the statements ran cleanly along with
// the trimmed stdout and stderr; the error return covers spawn failure
// only.
func RunPythonCommand(ctx context.Context, r executil.Runner, commands []string, exe string) (bool, string, string, error) {
	if exe == "" {
		exe = defaultPythonExe
	}
	res, err := r.Run(ctx, []string{exe, "-c", strings.Join(commands, "; ")})
	if err != nil {
		return false, "", "", err
	}
	return res.ExitCode == 0, strings.TrimSpace(res.Stdout), strings.TrimSpace(res.Stderr), nil
}

// PythonModuleVersion probes an importable python module for its version
// string, e.g. with commands printing module.__version__. It fails when
// the probe exits non-zero or prints nothing.
func PythonModuleVersion(ctx context.Context, r executil.Runner, name string, commands []string) (string, error) {
	ok, out, stderr, err := RunPythonCommand(ctx, r, commands, "")
	if err != nil {
		return "", err
	}
	if !ok || out == "" {
		return "", fmt.Errorf("couldn't determine version of module %s: %s", name, stderr)
	}
	return out, nil
}
