package version

// GitCommit and GitTag are set at build time with -ldflags "-X".
var GitCommit = "unknown"
var GitTag = "dev"
