package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	StartingMark = X
)

const (
	// WithBotType - the computer plays the mark the human did not pick.
	WithBotType = "bot"
	// LocalType - both marks are played from the same client, no computer opponent.
	LocalType = "local"
)

// Game - a single session: the grid, whose turn it is and the human/computer binding.
type Game struct {
	ID           string  `json:"id"`
	Grid         Grid    `json:"grid"`
	Turn         Mark    `json:"turn"`
	Status       string  `json:"status"`
	Outcome      Outcome `json:"outcome"`
	WinningCells []Cell  `json:"winning_cells,omitempty"`
	Type         string  `json:"type"`
	HumanMark    Mark    `json:"human_mark,omitempty"`
	BotMark      Mark    `json:"bot_mark,omitempty"`
	PlayerID     string  `json:"player_id"`
}

func NewGame(id, playerID, gameType string) *Game {
	return &Game{
		ID:       id,
		PlayerID: playerID,
		Turn:     StartingMark,
		Status:   StatusOngoing,
		Outcome:  InProgress(),
		Type:     gameType,
	}
}

// BindBot fixes the computer to the mark the human did not choose.
func (that *Game) BindBot(humanMark Mark) error {
	if !humanMark.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, humanMark)
	}

	that.Type = WithBotType
	that.HumanMark = humanMark
	that.BotMark = humanMark.Opponent()

	return nil
}

// MakeTurn commits a real move for mark and advances the turn.
func (that *Game) MakeTurn(mark Mark, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Grid.Place(mark, row, col); err != nil {
		return fmt.Errorf("failed to place mark: %w", err)
	}

	that.Turn = mark.Opponent()
	that.UpdateGameState()

	return nil
}

// UpdateGameState re-derives the outcome from the grid.
func (that *Game) UpdateGameState() {
	that.Outcome = that.Grid.Outcome()

	if !that.Outcome.IsTerminal() {
		that.Status = StatusOngoing
		that.WinningCells = nil
		return
	}

	that.Status = StatusFinished
	that.Turn = Empty
	that.WinningCells = that.Grid.WinningCells()
}

// Reset starts the session over with the same mark binding.
func (that *Game) Reset() {
	that.Grid = Grid{}
	that.Turn = StartingMark
	that.Status = StatusOngoing
	that.Outcome = InProgress()
	that.WinningCells = nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) IsBotTurn() bool {
	return that.IsWithBot() && that.IsOngoing() && that.Turn == that.BotMark
}

// MarkFor returns the mark a human move is committed with: the bound mark in a bot
// game, whoever's turn it is in a local game.
func (that *Game) MarkFor() Mark {
	if that.IsWithBot() {
		return that.HumanMark
	}

	return that.Turn
}
