// Package tournament plays games between strategies and runs round-robin
// tournaments on the worker pool.
package tournament

import (
	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/engine"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
	"github.com/lgbarn/chess-strategies-go/internal/processing"
	"github.com/lgbarn/chess-strategies-go/internal/search"
)

// GameResult is the outcome of one game.
type GameResult struct {
	State       chess.WinState
	Plies       int
	Moves       []chess.Move
	Adjudicated bool // Drawn because the ply limit was reached
}

// PlayGame plays a game from the initial position until it is decided by the
// rules or maxPlies plies have been played (0 = no limit), in which case it is
// adjudicated a draw.
//
// If a strategy fails to move or offers a move the rules do not allow, the
// game stops and the partial result is returned with a *errors.GameError
// naming the ply and the player.
func PlayGame(white, black search.Strategy, maxPlies int) (GameResult, error) {
	return PlayGameFrom(chess.NewBoard(), white, black, maxPlies)
}

// PlayGameFrom is PlayGame starting from a copy of start.
func PlayGameFrom(start *chess.Board, white, black search.Strategy, maxPlies int) (GameResult, error) {
	var players [chess.NumColours]search.Strategy
	players[chess.White] = white
	players[chess.Black] = black

	board := start.Clone()
	result := GameResult{}

	for {
		if result.State = engine.GameState(board); result.State.IsOver() {
			return result, nil
		}
		if maxPlies > 0 && result.Plies >= maxPlies {
			result.State = chess.Draw
			result.Adjudicated = true
			return result, nil
		}

		player := players[board.ToMove]
		move, err := player.ChooseMove(board)
		if err != nil {
			return result, &errors.GameError{
				Err:    err,
				PlyNum: result.Plies + 1,
				Player: player.Name(),
			}
		}
		if err := processing.ValidateMove(board, move); err != nil {
			return result, &errors.GameError{
				Err:      err,
				PlyNum:   result.Plies + 1,
				Player:   player.Name(),
				MoveText: move.String(),
			}
		}

		engine.ApplyMove(board, move)
		result.Moves = append(result.Moves, move)
		result.Plies++
	}
}
