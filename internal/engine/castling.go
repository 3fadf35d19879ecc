package engine

import "github.com/lgbarn/chess-strategies-go/internal/chess"

// castleSide describes one castling option relative to the king.
type castleSide struct {
	kingside bool
	rookFile int
	step     int // direction the king travels
}

// castleSides in generation order.
var castleSides = [...]castleSide{
	{kingside: false, rookFile: 0, step: -1},
	{kingside: true, rookFile: chess.BoardSize - 1, step: 1},
}

// hasRight returns true if the colour may still castle on this side.
func (s castleSide) hasRight(board *chess.Board, colour chess.Colour) bool {
	if s.kingside {
		return board.Castling[colour].Kingside
	}
	return board.Castling[colour].Queenside
}

// canCastle returns the rook's square if the king on from may castle on this side:
// the right is held, the colour's rook is on its corner, and every square
// between king and rook is empty. Attacked squares are not considered.
func canCastle(board *chess.Board, from chess.Square, colour chess.Colour, side castleSide) (chess.Square, bool) {
	if !side.hasRight(board, colour) {
		return chess.Square{}, false
	}

	rookSquare := chess.Sq(side.rookFile, from.Rank)
	if !board.At(rookSquare).Is(chess.Rook, colour) {
		return chess.Square{}, false
	}
	if !from.Add(chess.Sq(2*side.step, 0)).Valid() {
		return chess.Square{}, false
	}

	for file := from.File + side.step; file != side.rookFile; file += side.step {
		if !board.IsEmpty(chess.Sq(file, from.Rank)) {
			return chess.Square{}, false
		}
	}
	return rookSquare, true
}

// castleMoves returns the castling moves available to the king on from.
func castleMoves(board *chess.Board, from chess.Square, king chess.Piece) []chess.Move {
	var moves []chess.Move
	for _, side := range castleSides {
		rookSquare, ok := canCastle(board, from, king.Colour, side)
		if !ok {
			continue
		}
		moves = append(moves, chess.Move{
			Player: king.Colour,
			From:   from,
			To:     from.Add(chess.Sq(2*side.step, 0)),
			Piece:  king,
			Castle: chess.CastleMove{
				Rook:     board.At(rookSquare),
				RookFrom: rookSquare,
				RookTo:   from.Add(chess.Sq(side.step, 0)),
			},
		})
	}
	return moves
}

// updateCastlingRights removes castling rights when a king or corner rook
// moves, or a corner rook is captured. Rights are never restored here.
func updateCastlingRights(board *chess.Board, move chess.Move) {
	if move.Piece.Kind == chess.King {
		board.Castling[move.Player] = chess.CastleRights{}
	}
	if move.Piece.Kind == chess.Rook {
		updateCastlingRightsForRook(board, move.Player, move.From)
	}
	if move.Captured.Kind == chess.Rook {
		updateCastlingRightsForRook(board, move.Captured.Colour, move.CaptureSquare)
	}
}

// updateCastlingRightsForRook removes the right tied to a rook leaving its corner.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Rank != colour.BackRank() {
		return
	}
	for _, side := range castleSides {
		if sq.File != side.rookFile {
			continue
		}
		if side.kingside {
			board.Castling[colour].Kingside = false
		} else {
			board.Castling[colour].Queenside = false
		}
	}
}
