package search

import "github.com/lgbarn/chess-strategies-go/internal/chess"

// Evaluation is a static board score from White's point of view.
// Positive favours White.
type Evaluation int

// pieceValues is indexed by chess.Kind.
var pieceValues = [...]Evaluation{
	chess.NoKind: 0,
	chess.Pawn:   1,
	chess.Rook:   5,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Queen:  9,
	chess.King:   4,
}

// PieceValue returns the material value of a kind of piece, in pawns.
func PieceValue(k chess.Kind) Evaluation {
	if k < 0 || int(k) >= len(pieceValues) {
		return 0
	}
	return pieceValues[k]
}

// Evaluate scores the material on the board. Each piece contributes 100 times
// its value, positively for White and negatively for Black, plus the index of
// the rank it stands on. The rank term is added for both colours, so it
// rewards White pieces for advancing and Black pieces for holding back.
func Evaluate(board *chess.Board) Evaluation {
	var score Evaluation
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := board.Squares[file][rank]
			if p.IsEmpty() {
				continue
			}
			score += flip(p.Colour)*100*PieceValue(p.Kind) + Evaluation(rank)
		}
	}
	return score
}
