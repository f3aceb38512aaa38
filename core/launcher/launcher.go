// Package launcher resolves the wrapper's real on-disk location and
// delegates to the theming helper installed next to it.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"syscall"

	"github.com/hyde-project/hydeshell/core/config"
	"github.com/hyde-project/hydeshell/third_party/realpath"
)

// HelperFlags is the fixed argv forwarded to the helper, in order. The
// wrapper never passes its own arguments through.
var HelperFlags = []string{
	"--update-icon-size",
	"--update-border-radius",
	"--generate-includes",
}

type hostOS struct{}

func (hostOS) Getwd() (string, error) { return os.Getwd() }

func (hostOS) Lstat(name string) (os.FileInfo, error) { return os.Lstat(name) }

func (hostOS) Readlink(name string) (string, error) { return os.Readlink(name) }

// HostOS returns a realpath.OS backed by the host filesystem.
func HostOS() realpath.OS {
	return hostOS{}
}

// Resolve locates the helper as a sibling of the wrapper's real
// (symlink-free) location.
func Resolve(osys realpath.OS, executable, helperName string) (string, error) {
	real, err := realpath.Realpath(osys, executable)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", executable, err)
	}

	return path.Join(path.Dir(real), helperName), nil
}

// Invocation describes a single helper run.
type Invocation struct {
	// Path is the absolute helper path.
	Path string
	// Args is the helper argv including argv[0].
	Args []string
	// Env is appended to the inherited process environment.
	Env []string
}

// New builds the fixed helper invocation carrying the sourced control
// variables.
func New(helperPath string, ctl *config.ControlEnv) Invocation {
	return Invocation{
		Path: helperPath,
		Args: append([]string{helperPath}, HelperFlags...),
		Env:  ctl.Environ(),
	}
}

// Run executes the invocation and returns the helper's exit status
// unchanged. The error is non-nil only when the helper could not be run at
// all, in which case the status is 1.
func (inv Invocation) Run(stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	cmd := exec.Command(inv.Path, inv.Args[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), inv.Env...)

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		// Shell convention for signal-terminated children is 128+signal,
		// ExitCode() would report -1 instead.
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	case errors.Is(err, fs.ErrNotExist):
		return 1, fmt.Errorf("%s: no such file or directory", inv.Path)
	default:
		return 1, err
	}
}
