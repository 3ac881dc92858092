package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func newDiscardCmd(opts *options, in io.Reader, out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Delete the saved game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, in, out, errOut, func(ctx context.Context, session *application.Session) error {
				err := session.Discard(ctx)
				if errors.Is(err, apperror.ErrSnapshotNotFound) {
					_, _ = fmt.Fprintln(out, "No saved game found.")
					return nil
				}
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintln(out, "Saved game deleted.")

				return nil
			})
		},
	}
}
