package main

import "screenlight/cmd"

// version is set at build time with -ldflags "-X main.version=<version>".
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
