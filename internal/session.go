package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
	"github.com/rocketscienceinc/tictactoe-engine/internal/player"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
)

const (
	menuPrompt = "\nSelect option:\n" +
		"1. New Game\n" +
		"2. Load Saved Game\n" +
		"3. Exit\n" +
		"Enter 1, 2 or 3: "
	modePrompt = "\nSelect mode:\n" +
		"1. Singleplayer (vs Computer)\n" +
		"2. Multiplayer (2 Humans)\n" +
		"Enter 1 or 2: "
	againPrompt = "\nDo you want to play another game? (yes/no): "
	againHint   = "\nPlease enter 'yes' for yes or 'no' for no."

	choiceNew  = "1"
	choiceLoad = "2"
	choiceExit = "3"

	modeSingle = "1"
	modeMulti  = "2"
)

// Session owns the menu loop around the game engine: new game, resume, exit and play again.
type Session struct {
	logger  *slog.Logger
	console *console.Console
	repo    repository.SnapshotRepository
	random  random.Random
	marks   [2]entity.Mark
}

func NewSession(logger *slog.Logger, term *console.Console, repo repository.SnapshotRepository, rnd random.Random, players config.Players) *Session {
	return &Session{
		logger:  logger.With("component", "session"),
		console: term,
		repo:    repo,
		random:  rnd,
		marks:   [2]entity.Mark{entity.Mark(players.MarkA), entity.Mark(players.MarkB)},
	}
}

// Marks returns the marks given to the first and second player.
func (that *Session) Marks() [2]entity.Mark {
	return that.marks
}

// Run - shows the main menu until the user exits or the input is closed.
func (that *Session) Run(ctx context.Context) error {
	that.console.Println("Welcome to Tic-Tac-Toe!")

	for {
		err := that.round(ctx)
		if errors.Is(err, errExit) {
			return nil
		}
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			that.console.Println("\nExiting the game...")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var errExit = errors.New("exit requested")

func (that *Session) round(ctx context.Context) error {
	choice, err := that.console.Choose(ctx, menuPrompt, choiceNew, choiceLoad, choiceExit)
	if err != nil {
		return err
	}

	var session *game.Game

	switch choice {
	case choiceNew:
		session, err = that.newGame(ctx)
		if err != nil {
			return err
		}
	case choiceLoad:
		session, err = that.loadGame(ctx)
		if err != nil {
			return that.handleLoadError(err)
		}
		that.console.Println("\nLoaded saved game successfully!")
	default:
		that.console.Println("Exiting the game...")
		return errExit
	}

	if err = that.play(ctx, session); err != nil {
		return err
	}

	again, err := that.console.ChooseWithHint(ctx, againPrompt, againHint, "yes", "no")
	if err != nil {
		return err
	}

	if again == "no" {
		that.console.Println("\nThanks for playing!")
		return errExit
	}

	return nil
}

func (that *Session) newGame(ctx context.Context) (*game.Game, error) {
	mode, err := that.console.Choose(ctx, modePrompt, modeSingle, modeMulti)
	if err != nil {
		return nil, err
	}

	var first, second player.Player
	if mode == modeSingle {
		first = player.NewInteractive("Player", that.marks[0], that.console)
		second = player.NewAutomated("Computer", that.marks[1], that.random, that.console)
	} else {
		first = player.NewInteractive("Player 1", that.marks[0], that.console)
		second = player.NewInteractive("Player 2", that.marks[1], that.console)
	}

	session, err := game.New(first, second, game.WithLogger(that.logger), game.WithAutoSave(that.repo))
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	that.logger.Info("new game started", "session", session.SessionID(), "mode", mode)

	return session, nil
}

func (that *Session) loadGame(ctx context.Context) (*game.Game, error) {
	builder := player.NewBuilder(that.console, that.random)

	session, err := game.Load(ctx, that.repo, builder, game.WithLogger(that.logger), game.WithAutoSave(that.repo))
	if err != nil {
		return nil, err
	}

	that.logger.Info("saved game resumed", "session", session.SessionID())

	return session, nil
}

// handleLoadError sends the user back to the menu for a missing or unusable save.
func (that *Session) handleLoadError(err error) error {
	switch {
	case errors.Is(err, apperror.ErrSnapshotNotFound):
		that.console.Println("\nNo saved game found. Please choose to start a new game, or exit if you wish.")
		return nil
	case errors.Is(err, apperror.ErrCorruptResume):
		that.logger.Warn("saved game rejected", "error", err)
		that.console.Println("\n" + err.Error())
		that.console.Println("Please choose to start a new game instead, or exit if you wish.")
		return nil
	default:
		return err
	}
}

func (that *Session) play(ctx context.Context, session *game.Game) error {
	for !session.IsFinished() {
		that.console.Println("\n" + session.Board().String())

		err := session.Step(ctx)
		if errors.Is(err, apperror.ErrAutoSave) {
			that.logger.Warn("auto-save failed", "session", session.SessionID(), "error", err)
			that.console.Println("Warning: the game could not be saved.")
			continue
		}
		if err != nil {
			return fmt.Errorf("game stopped: %w", err)
		}
	}

	that.console.Println("\n" + session.Board().String())

	if winner, ok := session.Winner(); ok {
		that.console.Println(fmt.Sprintf("\n%s wins!", winner.Info().Name))
	} else {
		that.console.Println("\nIt's a draw!")
	}

	return nil
}

// Tally counts the outcomes of simulated games by winning mark.
type Tally struct {
	Games int
	Wins  map[entity.Mark]int
	Draws int
}

// Simulate - plays computer against computer without touching the saved game.
func (that *Session) Simulate(ctx context.Context, games int) (*Tally, error) {
	tally := &Tally{Wins: make(map[entity.Mark]int)}

	for range games {
		session, err := game.New(
			player.NewAutomated("Computer 1", that.marks[0], that.random, nil),
			player.NewAutomated("Computer 2", that.marks[1], that.random, nil),
			game.WithLogger(that.logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start simulated game: %w", err)
		}

		if err = session.Play(ctx); err != nil {
			return nil, fmt.Errorf("simulated game failed: %w", err)
		}

		tally.Games++
		if mark, ok := session.WinningMark(); ok {
			tally.Wins[mark]++
		} else {
			tally.Draws++
		}
	}

	return tally, nil
}

// Discard - removes the saved game.
func (that *Session) Discard(ctx context.Context) error {
	if err := that.repo.Delete(ctx); err != nil {
		return fmt.Errorf("failed to discard saved game: %w", err)
	}

	that.logger.Info("saved game discarded")

	return nil
}
