package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/twistylab/cubesim/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored scramble sessions",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of sessions to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SESSION\tCREATED\tSCRAMBLE\tSOLUTION")
	for _, s := range sessions {
		solution := "-"
		if s.Solution != nil {
			solution = fmt.Sprintf("%d moves", *s.SolutionMoves)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			s.SessionID[:8], s.CreatedAt.Format("2006-01-02 15:04"), s.Scramble, solution)
	}
	return w.Flush()
}
