// Package processing replays recorded games to validate and analyse them.
package processing

import (
	"fmt"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/engine"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
	"github.com/lgbarn/chess-strategies-go/internal/hashing"
)

// RepetitionCount is the number of occurrences of one position that counts
// as a repetition.
const RepetitionCount = 3

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard        *chess.Board
	Positions         []uint64 // Zobrist hashes, starting position first
	HasRepetition     bool
	HasUnderpromotion bool
	MaxRepetitions    int  // Most occurrences of any single position
	LongestQuietRun   uint // Highest halfmove clock reached

	Captures   int
	Promotions int
	Castles    int
	EnPassants int
}

// RepetitionDetected returns true if some position occurred RepetitionCount times.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// AnalyzeGame replays moves from a copy of start and records the features
// of the game. Moves are applied as given; use ValidateGame first for
// records of unknown origin.
func AnalyzeGame(start *chess.Board, moves []chess.Move) *GameAnalysis {
	board := start.Clone()
	analysis := &GameAnalysis{}

	posHash := hashing.GenerateZobristHash(board)
	analysis.Positions = append(analysis.Positions, posHash)
	positionCount := map[uint64]int{posHash: 1}
	analysis.MaxRepetitions = 1

	for _, move := range moves {
		engine.ApplyMove(board, move)

		switch {
		case move.IsEnPassant():
			analysis.EnPassants++
			analysis.Captures++
		case move.IsCapture():
			analysis.Captures++
		}
		if move.IsCastle() {
			analysis.Castles++
		}
		if move.IsPromotion() {
			analysis.Promotions++
			if move.Promotion.Kind != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}
		if board.HalfmoveClock > analysis.LongestQuietRun {
			analysis.LongestQuietRun = board.HalfmoveClock
		}

		posHash = hashing.GenerateZobristHash(board)
		analysis.Positions = append(analysis.Positions, posHash)
		positionCount[posHash]++
		if n := positionCount[posHash]; n > analysis.MaxRepetitions {
			analysis.MaxRepetitions = n
		}
	}

	analysis.HasRepetition = analysis.MaxRepetitions >= RepetitionCount
	analysis.FinalBoard = board
	return analysis
}

// ReplayGame replays moves from a copy of start to get the final board state.
func ReplayGame(start *chess.Board, moves []chess.Move) *chess.Board {
	board := start.Clone()
	for _, move := range moves {
		engine.ApplyMove(board, move)
	}
	return board
}

// ValidateGame checks that every move is one the move generator offers in
// the position it is played from, and that no move is played after the game
// has ended.
func ValidateGame(start *chess.Board, moves []chess.Move) *ValidationResult {
	result := &ValidationResult{Valid: true}
	board := start.Clone()

	for i, move := range moves {
		if err := ValidateMove(board, move); err != nil {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = fmt.Sprintf("ply %d: %v", i+1, err)
			return result
		}
		engine.ApplyMove(board, move)
	}

	return result
}

// ValidateMove returns an error wrapping errors.ErrIllegalMove unless the
// game on board is still being played and move is one the move generator
// offers for it.
func ValidateMove(board *chess.Board, move chess.Move) error {
	if !engine.IsPlaying(board) {
		return errors.Wrapf(errors.ErrIllegalMove, "%s after the game ended", move)
	}
	if !isGenerated(board, move) {
		return errors.Wrapf(errors.ErrIllegalMove, "%s", move)
	}
	return nil
}

func isGenerated(board *chess.Board, move chess.Move) bool {
	for _, m := range engine.AllMoves(board) {
		if m == move {
			return true
		}
	}
	return false
}
