// cmd/stockholm/main.go
package main

import (
	"stockholm/internal/app"
	"stockholm/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
