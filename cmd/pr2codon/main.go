// cmd/pr2codon/main.go
package main

import (
	"pr2codon/internal/app"
	"pr2codon/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
