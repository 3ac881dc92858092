package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-engine/internal"
)

var errInvalidGames = errors.New("--games must be at least 1")

func newSimulateCmd(opts *options, in io.Reader, out, errOut io.Writer) *cobra.Command {
	var games int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play computer against computer and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if games < 1 {
				return errInvalidGames
			}

			return run(cmd.Context(), opts, in, out, errOut, func(ctx context.Context, session *application.Session) error {
				tally, err := session.Simulate(ctx, games)
				if err != nil {
					return err
				}

				marks := session.Marks()
				_, _ = fmt.Fprintf(out, "Games: %d\n", tally.Games)
				for _, mark := range marks {
					_, _ = fmt.Fprintf(out, "%s wins: %d\n", mark, tally.Wins[mark])
				}
				_, _ = fmt.Fprintf(out, "Draws: %d\n", tally.Draws)

				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&games, "games", "n", 100, "Number of games to simulate")

	return cmd
}
