package launcher

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hyde-project/hydeshell/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOS implements realpath.OS over static path tables.
type fakeOS struct {
	// links maps symlink paths to their targets.
	links map[string]string
	// files holds every other path that exists, including directories.
	files map[string]bool
}

func (f fakeOS) Getwd() (string, error) { return "/", nil }

func (f fakeOS) Lstat(name string) (os.FileInfo, error) {
	if _, ok := f.links[name]; ok {
		return fakeFileInfo{name: path.Base(name), mode: os.ModeSymlink}, nil
	}
	if f.files[name] {
		return fakeFileInfo{name: path.Base(name)}, nil
	}
	return nil, fs.ErrNotExist
}

func (f fakeOS) Readlink(name string) (string, error) {
	if target, ok := f.links[name]; ok {
		return target, nil
	}
	return "", fs.ErrInvalid
}

type fakeFileInfo struct {
	name string
	mode os.FileMode
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return f.mode }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeFileInfo) Sys() interface{}   { return nil }

func TestResolve(t *testing.T) {
	cases := map[string]struct {
		osys       fakeOS
		executable string
		want       string
	}{
		"plain path": {
			osys: fakeOS{
				files: map[string]bool{
					"/opt":                true,
					"/opt/hyde":           true,
					"/opt/hyde/hydeshell": true,
				},
			},
			executable: "/opt/hyde/hydeshell",
			want:       "/opt/hyde/waybar.py",
		},
		"relative symlink resolved": {
			osys: fakeOS{
				links: map[string]string{
					"/usr/local/bin/waybar.sh": "../lib/hyde/hydeshell",
				},
				files: map[string]bool{
					"/usr":                          true,
					"/usr/local":                    true,
					"/usr/local/bin":                true,
					"/usr/local/lib":                true,
					"/usr/local/lib/hyde":           true,
					"/usr/local/lib/hyde/hydeshell": true,
				},
			},
			executable: "/usr/local/bin/waybar.sh",
			want:       "/usr/local/lib/hyde/waybar.py",
		},
		"absolute symlink resolved": {
			osys: fakeOS{
				links: map[string]string{
					"/usr/bin/waybar.sh": "/opt/hyde/hydeshell",
				},
				files: map[string]bool{
					"/usr":                true,
					"/usr/bin":            true,
					"/opt":                true,
					"/opt/hyde":           true,
					"/opt/hyde/hydeshell": true,
				},
			},
			executable: "/usr/bin/waybar.sh",
			want:       "/opt/hyde/waybar.py",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := Resolve(tc.osys, tc.executable, "waybar.py")
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveMissing(t *testing.T) {
	_, err := Resolve(fakeOS{}, "/nowhere/hydeshell", "waybar.py")
	assert.NotNil(t, err)
}

func TestNewInvocation(t *testing.T) {
	ctl := config.NewControlEnv()
	ctl.Set("FONT_SIZE", "10")

	inv := New("/opt/hyde/waybar.py", ctl)

	assert.Equal(t, "/opt/hyde/waybar.py", inv.Path)
	assert.Equal(t, []string{
		"/opt/hyde/waybar.py",
		"--update-icon-size",
		"--update-border-radius",
		"--generate-includes",
	}, inv.Args)
	assert.Equal(t, []string{"FONT_SIZE=10"}, inv.Env)
}

func writeScript(t *testing.T, body string) string {
	t.Helper()

	script := filepath.Join(t.TempDir(), "waybar.py")
	require.Nil(t, os.WriteFile(script, []byte("#!/bin/sh\n"+body), 0755))
	return script
}

func TestRunPropagatesExitStatus(t *testing.T) {
	script := writeScript(t, "echo helper \"$@\"\nexit 42\n")

	inv := New(script, config.NewControlEnv())
	stdout := &bytes.Buffer{}

	status, err := inv.Run(strings.NewReader(""), stdout, &bytes.Buffer{})
	assert.Nil(t, err)
	assert.Equal(t, 42, status)
	assert.Equal(t, "helper --update-icon-size --update-border-radius --generate-includes\n", stdout.String())
}

func TestRunForwardsControlEnv(t *testing.T) {
	script := writeScript(t, "echo \"marker=$HYDE_TEST_MARKER\"\n")

	ctl := config.NewControlEnv()
	ctl.Set("HYDE_TEST_MARKER", "present")

	inv := New(script, ctl)
	stdout := &bytes.Buffer{}

	status, err := inv.Run(strings.NewReader(""), stdout, &bytes.Buffer{})
	assert.Nil(t, err)
	assert.Equal(t, 0, status)
	assert.Equal(t, "marker=present\n", stdout.String())
}

func TestRunSignalTerminatedHelper(t *testing.T) {
	script := writeScript(t, "kill -TERM $$\n")

	inv := New(script, config.NewControlEnv())

	status, err := inv.Run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.Nil(t, err)
	// 128 + SIGTERM(15)
	assert.Equal(t, 143, status)
}

func TestRunMissingHelper(t *testing.T) {
	inv := New(filepath.Join(t.TempDir(), "waybar.py"), config.NewControlEnv())

	status, err := inv.Run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.NotNil(t, err)
	assert.Equal(t, 1, status)
}
