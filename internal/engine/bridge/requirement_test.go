package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/engine/bridge"
)

func TestSplitNameVersion(t *testing.T) {
	tests := []struct {
		spec, name, version string
	}{
		{spec: "requests>=2.0", name: "requests", version: ">=2.0"},
		{spec: "flask", name: "flask", version: ""},
		{spec: "requests[security]>=2.0", name: "requests[security]", version: ">=2.0"},
		{spec: "django~=4.2", name: "django", version: "~=4.2"},
		{spec: "six!=1.0", name: "six", version: "!=1.0"},
		{spec: "pkg<3,>=1", name: "pkg", version: "<3,>=1"},
		{spec: "", name: "", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			name, version := bridge.SplitNameVersion(tt.spec)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.version, version)
		})
	}
}

func TestParseRequirementLine(t *testing.T) {
	tests := []struct {
		line     string
		wantName string
		wantSpec domain.PackageSpec
		wantOK   bool
	}{
		{line: "requests", wantName: "requests", wantSpec: domain.SimpleSpec{Version: "*"}, wantOK: true},
		{line: "  six==1.17.0  ", wantName: "six", wantSpec: domain.SimpleSpec{Version: "==1.17.0"}, wantOK: true},
		{line: "pkg >= 1.0, < 2", wantName: "pkg", wantSpec: domain.SimpleSpec{Version: ">=1.0,<2"}, wantOK: true},
		{line: "flask>=2 # web", wantName: "flask", wantSpec: domain.SimpleSpec{Version: ">=2"}, wantOK: true},
		{
			line:     "requests[security, socks]>=2.32",
			wantName: "requests",
			wantSpec: domain.DetailedSpec{Version: ">=2.32", Extras: []string{"security", "socks"}},
			wantOK:   true,
		},
		{
			line:     "pywin32; sys_platform == 'win32'",
			wantName: "pywin32",
			wantSpec: domain.DetailedSpec{Version: "*", Markers: "sys_platform == 'win32'"},
			wantOK:   true,
		},
		{line: `six==1.17.0 \`, wantName: "six", wantSpec: domain.SimpleSpec{Version: "==1.17.0"}, wantOK: true},
		{
			line:     "six==1.17.0 --hash=sha256:abc",
			wantName: "six",
			wantSpec: domain.SimpleSpec{Version: "==1.17.0"},
			wantOK:   true,
		},
		{
			line:     `colorama==0.4.6 ; sys_platform == "win32" \`,
			wantName: "colorama",
			wantSpec: domain.DetailedSpec{Version: "==0.4.6", Markers: `sys_platform == "win32"`},
			wantOK:   true,
		},
		{line: "    --hash=sha256:abc", wantOK: false},
		{line: "six==1.17.0/extra", wantOK: false},
		{
			line:     "httpx @ git+https://github.com/encode/httpx.git@0.27.0",
			wantName: "httpx",
			wantSpec: domain.DetailedSpec{Git: "https://github.com/encode/httpx.git", Ref: "0.27.0"},
			wantOK:   true,
		},
		{
			line:     "internal @ git+ssh://git@example.com/team/internal.git",
			wantName: "internal",
			wantSpec: domain.DetailedSpec{Git: "ssh://git@example.com/team/internal.git"},
			wantOK:   true,
		},
		{
			line:     "mylib[cli] @ file:///src/mylib ; python_version >= '3.10'",
			wantName: "mylib",
			wantSpec: domain.DetailedSpec{Path: "/src/mylib", Extras: []string{"cli"}, Markers: "python_version >= '3.10'"},
			wantOK:   true,
		},
		{line: "wheel @ https://example.com/wheel-1.0-py3-none-any.whl", wantOK: false},
		{line: "two words==1.0", wantOK: false},
		{line: "", wantOK: false},
		{line: "# comment", wantOK: false},
		{line: "-r other.txt", wantOK: false},
		{line: "--index-url https://example.com", wantOK: false},
		{line: "==1.0", wantOK: false},
		{line: "broken]x[", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, spec, ok := bridge.ParseRequirementLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantSpec, spec)
		})
	}
}
