package cli

const (
	FlagHome     = "home"
	FlagFormat   = "format"
	FlagLogLevel = "log-level"
	FlagMax      = "max"
	Flag32       = "32"
)
