package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twistylab/cubesim"
)

var applyFacelets string

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply moves to a cube state",
	Long: `Apply a move sequence to a state and print the result.

By default the sequence starts from the solved state. Use --facelets to
start from a serialized state instead:

  cubesim apply --facelets UUU...BBB "R U2 F'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyFacelets, "facelets", "", "Starting state as a 54-character facelet string")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	state := cubesim.New()
	if applyFacelets != "" {
		var err error
		state, err = cubesim.Decode(applyFacelets)
		if err != nil {
			return err
		}
	}

	state, err := state.ApplyNotation(strings.Join(args, " "))
	if err != nil {
		return err
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
