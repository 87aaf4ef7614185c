package main

import (
	"github.com/gaurav-prasanna/sheetfolio/cmd"
)

func main() {
	cmd.Execute()
}
