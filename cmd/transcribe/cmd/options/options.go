// Package options holds the persistent flags shared by every subcommand.
package options

var (
	Verbose    bool
	ConfigPath string
	Progress   bool
)
