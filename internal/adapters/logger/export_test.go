package logger

// Exported for testing.
var (
	CollectMessages = collectMessages
	FormatChain     = formatChain
)
