package main

import (
	"github.com/tendly/tenderchat/internal/cli"
)

func main() {
	cli.Execute()
}
