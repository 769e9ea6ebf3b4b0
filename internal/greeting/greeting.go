// Package greeting formats the two lines the CLI can print.
package greeting

// DefaultName is greeted when no name is given.
const DefaultName = "World"

// Greet returns the greeting line for name. The name is used verbatim.
func Greet(name string) string {
	return "Hello " + name
}

// VersionLine returns the line printed by the eager version flag.
func VersionLine(program, version string) string {
	return program + " Version: " + version
}
