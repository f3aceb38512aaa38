package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ControlEnv holds the variables sourced from the shared control files.
// Keys are opaque and forwarded verbatim to the helper's environment.
// Iteration order is insertion order so invocations are reproducible.
type ControlEnv struct {
	keys   []string
	values map[string]string
}

// NewControlEnv creates an empty ControlEnv.
func NewControlEnv() *ControlEnv {
	return &ControlEnv{values: make(map[string]string)}
}

// Set stores key=value. Later Sets for the same key override the value but
// keep the key's original position.
func (e *ControlEnv) Set(key, value string) {
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// LookupEnv returns the value for key and whether it was present.
func (e *ControlEnv) LookupEnv(key string) (string, bool) {
	val, ok := e.values[key]
	return val, ok
}

// Getenv returns the value for key or "" if unset.
func (e *ControlEnv) Getenv(key string) string {
	val, _ := e.LookupEnv(key)
	return val
}

// Len returns the number of variables.
func (e *ControlEnv) Len() int {
	return len(e.keys)
}

// Environ returns the variables as a KEY=value list in insertion order.
func (e *ControlEnv) Environ() []string {
	var env []string
	for _, k := range e.keys {
		env = append(env, fmt.Sprintf("%s=%s", k, e.values[k]))
	}
	return env
}

// ControlFilePaths returns the shared control files in sourcing order.
// Later files override earlier ones per key.
func ControlFilePaths(getenv func(string) string, home string) []string {
	runtimeDir := getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = filepath.Join(home, ".runtime")
	}
	stateDir := getenv("XDG_STATE_HOME")
	if stateDir == "" {
		stateDir = filepath.Join(home, ".local", "state")
	}

	return []string{
		filepath.Join(runtimeDir, "hyde", "environment"),
		filepath.Join(stateDir, "hyde", "config"),
	}
}

// SourceControlFiles reads each control file in order into a single
// ControlEnv. Missing files are skipped; a malformed line is an error.
func SourceControlFiles(fsys afero.Fs, paths []string) (*ControlEnv, error) {
	env := NewControlEnv()
	for _, path := range paths {
		if err := sourceControlFile(fsys, env, path); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func sourceControlFile(fsys afero.Fs, env *ControlEnv, path string) error {
	fd, err := fsys.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		// Trimming first means indented comments are skipped too, the
		// helper's own reader only recognizes "#" in column one.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			return fmt.Errorf("%s:%d: not a variable assignment: %q", path, lineNo, line)
		}

		// Values are stored single-quoted by the writer.
		env.Set(key, strings.Trim(value, "'"))
	}

	return scanner.Err()
}
