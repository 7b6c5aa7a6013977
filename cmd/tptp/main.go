package main

import (
	"github.com/twistedduck/tptp/pkg/cmd"
)

func main() {
	cmd.Execute()
}
