package main

// Version is the agent service version, overridable at build time via
// -ldflags "-X main.Version=...".
var Version = "dev"
