package cli

// Name, Version and Date should be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/greeter/cli.Name=MyApp' -X 'github.com/flarebyte/greeter/cli.Version=1.2.3' -X 'github.com/flarebyte/greeter/cli.Date=2026-02-09'"
var (
	Name    string
	Version string
	Date    string
)
