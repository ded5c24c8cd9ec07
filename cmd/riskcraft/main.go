package main

import (
	"github.com/riskcraft/riskcraft/pkg/cmd"
)

func main() {
	cmd.Execute()
}
