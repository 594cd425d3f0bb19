// cmd/jcdist/main.go
package main

import (
	"jcdist/internal/app"
	"jcdist/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
