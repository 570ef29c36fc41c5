package config

// CopyNameSuffix is appended to the name of every copied symbol unless the
// caller supplies its own renamer.
const CopyNameSuffix = "$copy"

// ConfigFileNames are searched, in order, by FindConfig.
var ConfigFileNames = []string{"irclone.yaml", "irclone.yml"}

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log levels accepted in configuration.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Mapping table formats accepted by --format. "md" is short for markdown.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatMD       = "md"
)
