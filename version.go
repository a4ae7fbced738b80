package lsystem

// Version is the release of the lsvg tool.
const Version = "0.3.0"
