package cmd

// version is set at build time with
// -ldflags "-X github.com/drcDRt/tmc-cli/cmd.version=<version>".
var version = "dev"
