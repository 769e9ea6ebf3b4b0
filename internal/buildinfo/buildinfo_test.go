package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/flarebyte/greeter/cli"
)

func resetAll(t *testing.T) {
	t.Helper()
	oldName, oldVersion, oldCommit, oldDate, oldBuiltBy := ProgramName, Version, Commit, Date, BuiltBy
	oldCLIName, oldCLIVersion, oldCLIDate := cli.Name, cli.Version, cli.Date
	oldRead := readBuildInfo
	t.Cleanup(func() {
		ProgramName, Version, Commit, Date, BuiltBy = oldName, oldVersion, oldCommit, oldDate, oldBuiltBy
		cli.Name, cli.Version, cli.Date = oldCLIName, oldCLIVersion, oldCLIDate
		readBuildInfo = oldRead
	})
	ProgramName, Version, Commit, Date, BuiltBy = "", "", "", "", ""
	cli.Name, cli.Version, cli.Date = "", "", ""
	readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
}

func TestDefaults(t *testing.T) {
	resetAll(t)
	if got := Name(); got != "greeter" {
		t.Fatalf("name: %q", got)
	}
	if got := ResolvedVersion(); got != "dev" {
		t.Fatalf("version: %q", got)
	}
	if got := Summary(); got != "dev" {
		t.Fatalf("summary: %q", got)
	}
}

func TestOverridesTakePrecedence(t *testing.T) {
	resetAll(t)
	cli.Name, cli.Version = "FromCLI", "0.0.1"
	if got := Name(); got != "FromCLI" {
		t.Fatalf("cli name: %q", got)
	}
	if got := ResolvedVersion(); got != "0.0.1" {
		t.Fatalf("cli version: %q", got)
	}
	ProgramName, Version = "MyApp", "1.2.3"
	if got := Name(); got != "MyApp" {
		t.Fatalf("name: %q", got)
	}
	if got := ResolvedVersion(); got != "1.2.3" {
		t.Fatalf("version: %q", got)
	}
}

func TestModuleVersionFallback(t *testing.T) {
	resetAll(t)
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "v0.4.0"}}, true
	}
	if got := ResolvedVersion(); got != "0.4.0" {
		t.Fatalf("version: %q", got)
	}

	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	}
	if got := ResolvedVersion(); got != "dev" {
		t.Fatalf("devel build: %q", got)
	}
}

func TestSummaryWithMetadata(t *testing.T) {
	resetAll(t)
	Version = "1.2.3"
	Commit = "0123456789abcdef"
	cli.Date = "2026-02-09"
	BuiltBy = "ci"
	want := "1.2.3 (commit=0123456, date=2026-02-09, built_by=ci)"
	if got := Summary(); got != want {
		t.Fatalf("unexpected summary\nwant: %s\n got: %s", want, got)
	}
}
