package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	testifysuite "github.com/stretchr/testify/suite"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

// SnapshotRepositorySuite runs the same checks against every SnapshotRepository.
type SnapshotRepositorySuite struct {
	testifysuite.Suite

	newRepo func(t *testing.T) (context.Context, SnapshotRepository)

	ctx  context.Context
	repo SnapshotRepository
}

func (s *SnapshotRepositorySuite) SetupTest() {
	s.ctx, s.repo = s.newRepo(s.T())
}

func sampleSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		SessionID: "session-1",
		Board: entity.BoardSnapshot{Grid: [][]string{
			{"X", " ", " "},
			{" ", "O", " "},
			{" ", " ", " "},
		}},
		Players: []entity.PlayerInfo{
			{Name: "Player", Mark: "X", Kind: entity.KindInteractive},
			{Name: "Computer", Mark: "O", Kind: entity.KindAutomated},
		},
		CurrentIndex: 0,
	}
}

func (s *SnapshotRepositorySuite) TestSaveAndLoad() {
	// Given: a saved snapshot
	snapshot := sampleSnapshot()
	s.Require().NoError(s.repo.Save(s.ctx, snapshot))

	// When: loading it back
	loaded, err := s.repo.Load(s.ctx)

	// Then: it is unchanged
	s.Require().NoError(err)
	s.Equal(snapshot, loaded)
}

func (s *SnapshotRepositorySuite) TestSaveOverwrites() {
	// Given: two saves in a row
	first := sampleSnapshot()
	s.Require().NoError(s.repo.Save(s.ctx, first))

	second := sampleSnapshot()
	second.Board.Grid[2][2] = "X"
	second.CurrentIndex = 1
	s.Require().NoError(s.repo.Save(s.ctx, second))

	// When: loading
	loaded, err := s.repo.Load(s.ctx)

	// Then: the last writer wins
	s.Require().NoError(err)
	s.Equal(second, loaded)
}

func (s *SnapshotRepositorySuite) TestLoadMissing() {
	loaded, err := s.repo.Load(s.ctx)

	s.Require().ErrorIs(err, apperror.ErrSnapshotNotFound)
	s.Nil(loaded)
}

func (s *SnapshotRepositorySuite) TestDelete() {
	// Given: a saved snapshot
	s.Require().NoError(s.repo.Save(s.ctx, sampleSnapshot()))

	// When: deleting it
	s.Require().NoError(s.repo.Delete(s.ctx))

	// Then: it is gone, and deleting again reports that
	_, err := s.repo.Load(s.ctx)
	s.Require().ErrorIs(err, apperror.ErrSnapshotNotFound)
	s.Require().ErrorIs(s.repo.Delete(s.ctx), apperror.ErrSnapshotNotFound)
}

func TestFileSnapshotRepository(t *testing.T) {
	testifysuite.Run(t, &SnapshotRepositorySuite{
		newRepo: func(t *testing.T) (context.Context, SnapshotRepository) {
			return context.Background(), NewFileSnapshotRepository(filepath.Join(t.TempDir(), "saves", "savegame.json"))
		},
	})
}

func TestRedisSnapshotRepository(t *testing.T) {
	testifysuite.Run(t, &SnapshotRepositorySuite{
		newRepo: func(t *testing.T) (context.Context, SnapshotRepository) {
			ctx, st := suite.New(t)
			return ctx, NewRedisSnapshotRepository(st.Storage, "tictactoe:savegame")
		},
	})
}

func TestFileSnapshotRepository_Format(t *testing.T) {
	t.Run("Writes the documented JSON layout", func(t *testing.T) {
		// Given: a file repository
		path := filepath.Join(t.TempDir(), "savegame.json")
		repo := NewFileSnapshotRepository(path)

		// When: saving a snapshot
		require.NoError(t, repo.Save(context.Background(), sampleSnapshot()))

		// Then: the file uses board.grid, players[].type and current_index
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"session_id": "session-1",
			"board": {"grid": [["X"," "," "],[" ","O"," "],[" "," "," "]]},
			"players": [
				{"name": "Player", "mark": "X", "type": "Interactive"},
				{"name": "Computer", "mark": "O", "type": "Automated"}
			],
			"current_index": 0
		}`, string(data))
	})

	t.Run("Reads files written without a session id", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "savegame.json")
		legacy := `{"board": {"grid": [["X"," "," "],[" "," "," "],[" "," "," "]]},
			"players": [{"name": "Player", "mark": "X", "type": "HumanPlayer"},
			{"name": "Computer", "mark": "O", "type": "ComputerPlayer"}], "current_index": 1}`
		require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

		loaded, err := NewFileSnapshotRepository(path).Load(context.Background())

		require.NoError(t, err)
		require.Empty(t, loaded.SessionID)
		require.Equal(t, entity.PlayerKind("ComputerPlayer"), loaded.Players[1].Kind)
		require.Equal(t, 1, loaded.CurrentIndex)
	})

	t.Run("Unparsable content is a corrupt resume", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "savegame.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := NewFileSnapshotRepository(path).Load(context.Background())

		require.ErrorIs(t, err, apperror.ErrCorruptResume)
	})
}
