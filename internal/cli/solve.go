package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/twistylab/cubesim"
	"github.com/twistylab/cubesim/internal/solver"
	"github.com/twistylab/cubesim/internal/storage"
)

var (
	solveFacelets string
	solveScramble string
	solveSession  string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a cube state with the external solver",
	Long: `Send a facelet string to the external two-phase solver and print the
returned move sequence. The state can come from a raw facelet string, a
scramble sequence, or a stored session:

  cubesim solve --facelets UUF...UBB
  cubesim solve --scramble "R U R' U'"
  cubesim solve --session <id>

The returned solution is verified locally before it is reported: applying
it to the input state must produce the solved cube.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveFacelets, "facelets", "", "State to solve as a 54-character facelet string")
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble sequence producing the state to solve")
	solveCmd.Flags().StringVar(&solveSession, "session", "", "Stored session ID to solve")
	solveCmd.MarkFlagsMutuallyExclusive("facelets", "scramble", "session")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	var (
		repo      *storage.SessionRepository
		sessionID string
	)

	facelets := solveFacelets
	switch {
	case solveScramble != "":
		state, err := cubesim.New().ApplyNotation(solveScramble)
		if err != nil {
			return err
		}
		if facelets, err = state.Encode(); err != nil {
			return err
		}
	case solveSession != "":
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo = storage.NewSessionRepository(db)
		session, err := repo.Get(solveSession)
		if err != nil {
			return err
		}
		facelets = session.Facelets
		sessionID = session.SessionID
	case facelets == "":
		return fmt.Errorf("one of --facelets, --scramble, or --session is required")
	}

	state, err := cubesim.Decode(facelets)
	if err != nil {
		return err
	}

	url := getSolverURL()
	log.Debug().Str("url", url).Str("facelets", facelets).Msg("requesting solution")

	moves, err := solver.New(url).Solve(cmd.Context(), facelets)
	if err != nil {
		return err
	}

	if !state.ApplyMoves(moves...).IsSolved() {
		return fmt.Errorf("solver returned a sequence that does not solve the state: %s",
			cubesim.FormatMoves(moves))
	}

	notation := cubesim.FormatMoves(moves)
	fmt.Printf("Solution (%d moves): %s\n", len(moves), notation)

	if sessionID != "" {
		if err := repo.RecordSolution(sessionID, notation, len(moves)); err != nil {
			return err
		}
		log.Debug().Str("session", sessionID).Msg("recorded solution")
	}
	return nil
}
