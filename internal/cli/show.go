package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twistylab/cubesim"
)

var showCmd = &cobra.Command{
	Use:   "show [moves...]",
	Short: "Show a cube state",
	Long: `Show the cube net and facelet string for a state.

With no arguments the solved state is shown. Arguments are applied as a
move sequence in standard notation:

  cubesim show R U R' U'`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	state := cubesim.New()
	if len(args) > 0 {
		var err error
		state, err = state.ApplyNotation(strings.Join(args, " "))
		if err != nil {
			return err
		}
	}

	facelets, err := state.Encode()
	if err != nil {
		return err
	}

	fmt.Println(state.String())
	fmt.Printf("Facelets: %s\n", facelets)
	fmt.Printf("Solved:   %v\n", state.IsSolved())
	return nil
}
