package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/twistylab/cubesim"
	"github.com/twistylab/cubesim/internal/storage"
)

var (
	scrambleLength int
	scrambleSeed   uint64
	scrambleStore  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate and apply a random scramble",
	Long: `Generate a random scramble, apply it to a solved cube, and print the
scramble together with the resulting state.

With --store the scramble is saved as a session so it can be solved
later with "cubesim solve --session <id>".`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 25, "Number of moves in the scramble")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Seed for a reproducible scramble (0 = random)")
	scrambleCmd.Flags().BoolVar(&scrambleStore, "store", true, "Store the scramble as a session")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	var moves []cubesim.Move
	if scrambleSeed != 0 {
		moves = cubesim.ScrambleSeeded(scrambleLength, scrambleSeed)
	} else {
		moves = cubesim.Scramble(scrambleLength)
	}

	state := cubesim.New().ApplyMoves(moves...)
	facelets, err := state.Encode()
	if err != nil {
		return err
	}
	notation := cubesim.FormatMoves(moves)

	fmt.Printf("Scramble: %s\n\n", notation)
	fmt.Println(state.String())
	fmt.Printf("Facelets: %s\n", facelets)

	if scrambleStore {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := storage.NewSessionRepository(db).Create(notation, facelets)
		if err != nil {
			return err
		}
		log.Debug().Str("session", id).Msg("stored scramble session")
		fmt.Printf("Session:  %s\n", id)
	}
	return nil
}
