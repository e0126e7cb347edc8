package dict

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootUse   = "dict <word>"
	MsgRootShort = "Look up an English word in the free dictionary API"

	// Usage messages, printed on stdout
	MsgErrArgCount = "Incorrect number of arguments!"
	MsgUsageLine   = "Usage: dict <word>"

	// Error messages
	MsgErrorPrefix = "Error: %v"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor = "Disable colored output"

	MsgVersionTemplate = "dict {{.Version}}\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.md
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/help-template.txt
	msgHelpTemplateRaw string
	MsgHelpTemplate    = strings.TrimSpace(msgHelpTemplateRaw) + "\n"
)
