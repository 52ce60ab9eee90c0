package cli

import (
	"github.com/spf13/cobra"

	"github.com/twistylab/cubesim/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive simulator",
	Long: `Start the interactive terminal simulator.

Keyboard:
  u d l r f b   - turn that face clockwise
  U D L R F B   - turn that face counter-clockwise (prime)
  m e s / M E S - middle slice moves
  backspace     - undo the last move
  ctrl+n        - reset to solved
  q / esc       - quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
