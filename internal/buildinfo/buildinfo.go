// Package buildinfo exposes version metadata for the CLI. Values can be
// overridden at build time via -ldflags. This package also honors values set in
// the cli package (cli.Name/cli.Version/cli.Date) for compatibility with
// external build scripts.
package buildinfo

import (
	"runtime/debug"
	"strings"

	"github.com/flarebyte/greeter/cli"
)

var (
	// ProgramName is the display name used in the version line. Falls back to
	// cli.Name, then "greeter".
	ProgramName = ""
	// Version is the semantic version or custom string. Falls back to
	// cli.Version, the main module version, then "dev".
	Version = ""
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional). Falls back to cli.Date.
	Date = ""
	// BuiltBy is an optional builder identifier (optional).
	BuiltBy = ""
)

const (
	defaultProgramName = "greeter"
	defaultVersion     = "dev"
)

var readBuildInfo = debug.ReadBuildInfo

// Name returns the program name shown in the version line.
func Name() string {
	if ProgramName != "" {
		return ProgramName
	}
	if cli.Name != "" {
		return cli.Name
	}
	return defaultProgramName
}

// ResolvedVersion returns the version string shown in the version line.
func ResolvedVersion() string {
	if Version != "" {
		return Version
	}
	if cli.Version != "" {
		return cli.Version
	}
	if bi, ok := readBuildInfo(); ok && bi != nil {
		// `go install module@v1.2.3` stamps the main module version.
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return defaultVersion
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := ResolvedVersion()

	d := Date
	if d == "" {
		d = cli.Date
	}

	parts := make([]string, 0, 3)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d != "" {
		parts = append(parts, "date="+d)
	}
	if BuiltBy != "" {
		parts = append(parts, "built_by="+BuiltBy)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
