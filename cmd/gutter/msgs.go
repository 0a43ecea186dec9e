package gutter

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Resolve line decoration styles"
	MsgShowShort    = "Show which decorations are enabled"
	MsgStylesShort  = "List style keywords and what they expand to"
	MsgConfigShort  = "Print a starter or the effective configuration"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default $XDG_CONFIG_HOME/gutter/config.toml)"
	MsgFlagStyle       = "Comma separated style keywords (auto, full, plain, changes, grid, header, numbers, snip)"
	MsgFlagPlain       = "Disable all decorations, overriding --style and --number"
	MsgFlagNumber      = "Show line numbers only, overriding --style"
	MsgFlagDecorations = "When to treat output as interactive: auto, always, never"
	MsgFlagFormat      = "Output format: auto, term, text, json"
	MsgFlagDump        = "Print the effective configuration instead of the starter file"
	MsgFlagPath        = "Print the directory searched for config files"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrResolve     = "failed to resolve style: %w"
	MsgErrNewRenderer = "failed to create renderer: %w"

	// Version output
	MsgVersionFormat = "gutter version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
