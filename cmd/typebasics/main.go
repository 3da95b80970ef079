// Command typebasics maps vehicles, statuses and directions to sentences.
//
// Run:
//
//	go run ./cmd/typebasics describe --kind car --doors 4
//	go run ./cmd/typebasics status -- Success -1 Pending
//	go run ./cmd/typebasics list
package main

import (
	"fmt"
	"os"

	"github.com/marcodamonte/typing-basics/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
