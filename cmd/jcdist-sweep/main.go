// cmd/jcdist-sweep/main.go
package main

import (
	"jcdist/internal/appshell"
	"jcdist/internal/sweepapp"
)

func main() { appshell.Main(sweepapp.RunContext) }
