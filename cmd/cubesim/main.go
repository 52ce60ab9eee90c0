// cubesim - CLI for the 3x3 twisty-puzzle simulator.
package main

import (
	"github.com/twistylab/cubesim/internal/cli"
)

func main() {
	cli.Execute()
}
