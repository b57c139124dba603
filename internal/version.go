package internal

// Version and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Date    = ""
)
