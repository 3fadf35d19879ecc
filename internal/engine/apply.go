package engine

import (
	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
)

// snapshot holds the scalar board state a move cannot reconstruct by itself.
type snapshot struct {
	castling      [chess.NumColours]chess.CastleRights
	enPassant     bool
	epFile        int
	halfmoveClock uint
	toMove        chess.Colour
}

func takeSnapshot(board *chess.Board) snapshot {
	return snapshot{
		castling:      board.Castling,
		enPassant:     board.EnPassant,
		epFile:        board.EPFile,
		halfmoveClock: board.HalfmoveClock,
		toMove:        board.ToMove,
	}
}

func (s snapshot) restore(board *chess.Board) {
	board.Castling = s.castling
	board.EnPassant = s.enPassant
	board.EPFile = s.epFile
	board.HalfmoveClock = s.halfmoveClock
	board.ToMove = s.toMove
}

// ApplyMove applies a move to the board and updates the board state.
// The move must have been generated against this board; ApplyMove panics
// with ErrBoardMismatch if the source square does not hold the moving piece.
func ApplyMove(board *chess.Board, move chess.Move) {
	if got := board.At(move.From); got != move.Piece {
		panic(errors.Wrapf(errors.ErrBoardMismatch, "apply %v: %v holds %v, want %v", move, move.From, got, move.Piece))
	}

	board.Set(move.From, chess.NoPiece)
	if move.IsCapture() {
		board.Set(move.CaptureSquare, chess.NoPiece)
	}
	board.Set(move.To, move.Placed())

	if move.IsCastle() {
		rook := board.At(move.Castle.RookFrom)
		if rook != move.Castle.Rook {
			panic(errors.Wrapf(errors.ErrBoardMismatch, "apply %v: %v holds %v, want %v", move, move.Castle.RookFrom, rook, move.Castle.Rook))
		}
		board.Set(move.Castle.RookFrom, chess.NoPiece)
		board.Set(move.Castle.RookTo, rook)
	}

	updateCastlingRights(board, move)

	if isDoublePush(move) {
		board.EnPassant = true
		board.EPFile = move.To.File
	} else {
		board.ClearEnPassant()
	}

	board.ToMove = board.ToMove.Opposite()

	if move.IsCapture() || move.Piece.Kind == chess.Pawn || move.IsCastle() {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
}

// ConsiderMove applies a move, calls fn with the updated board, and then
// restores the board exactly as it was. fn may change the board's scalar
// state (side to move, en passant) but must leave every square as it found it.
func ConsiderMove[T any](board *chess.Board, move chess.Move, fn func(*chess.Board) T) T {
	saved := takeSnapshot(board)
	ApplyMove(board, move)
	result := fn(board)
	revertMove(board, move, saved)
	return result
}

// revertMove undoes ApplyMove using the move itself and the saved scalar state.
func revertMove(board *chess.Board, move chess.Move, saved snapshot) {
	if move.IsCastle() {
		if got := board.At(move.Castle.RookTo); got != move.Castle.Rook {
			panic(errors.Wrapf(errors.ErrBoardMismatch, "revert %v: %v holds %v, want %v", move, move.Castle.RookTo, got, move.Castle.Rook))
		}
		board.Set(move.Castle.RookTo, chess.NoPiece)
		board.Set(move.Castle.RookFrom, move.Castle.Rook)
	}

	if got := board.At(move.To); got != move.Placed() {
		panic(errors.Wrapf(errors.ErrBoardMismatch, "revert %v: %v holds %v, want %v", move, move.To, got, move.Placed()))
	}
	board.Set(move.To, chess.NoPiece)
	board.Set(move.From, move.Piece)
	if move.IsCapture() {
		board.Set(move.CaptureSquare, move.Captured)
	}

	saved.restore(board)
}
