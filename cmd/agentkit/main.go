package main

import (
	"os"

	"github.com/hashgraph-online/agent-kit-go/pkg/cli"
)

func main() {
	runner := cli.NewRunner()
	os.Exit(runner.Run(os.Args[1:]))
}
