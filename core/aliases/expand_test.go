package aliases

import (
	"testing"

	"github.com/hyde-project/hydeshell/core/config"
	"github.com/stretchr/testify/assert"
)

func TestExpandLine(t *testing.T) {
	expander := NewExpander(Table(config.Default()))

	cases := []struct {
		name string
		line string
		want string
	}{
		{
			name: "bare token",
			line: "ll",
			want: "eza -lha --icons=auto --sort=name --group-directories-first",
		},
		{
			name: "token with arguments",
			line: "ll /tmp",
			want: "eza -lha --icons=auto --sort=name --group-directories-first /tmp",
		},
		{
			name: "command position after and",
			line: "true && lt",
			want: "true && eza --icons=auto --tree",
		},
		{
			name: "command position in pipe",
			line: "l | wc -l",
			want: "eza -lh --icons=auto | wc -l",
		},
		{
			name: "both sides of a pipe",
			line: "ls | ls",
			want: "eza -1 --icons=auto | eza -1 --icons=auto",
		},
		{
			name: "argument position untouched",
			line: "echo ll",
			want: "echo ll",
		},
		{
			name: "quoted token untouched",
			line: "'ll'",
			want: "'ll'",
		},
		{
			name: "unknown token untouched",
			line: "grep -r foo .",
			want: "grep -r foo .",
		},
		{
			name: "navigation dot three",
			line: ".3",
			want: "cd ../../..",
		},
		{
			name: "navigation dot dot",
			line: "..",
			want: "cd ..",
		},
		{
			name: "mkdir gains parents flag",
			line: "mkdir foo/bar",
			want: "mkdir -p foo/bar",
		},
		{
			name: "mkdir keeps existing short parents flag",
			line: "mkdir -p foo/bar",
			want: "mkdir -p foo/bar",
		},
		{
			name: "mkdir keeps existing long parents flag",
			line: "mkdir --parents foo/bar",
			want: "mkdir --parents foo/bar",
		},
		{
			name: "mkdir without operands",
			line: "mkdir",
			want: "mkdir -p",
		},
		{
			name: "empty line",
			line: "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := expander.ExpandLine(tc.line)
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExpandLineSyntaxError(t *testing.T) {
	expander := NewExpander(Table(config.Default()))

	got, err := expander.ExpandLine("ll && ")
	assert.NotNil(t, err)
	assert.Equal(t, "ll && ", got)
}
