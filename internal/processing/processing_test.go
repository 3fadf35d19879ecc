package processing

import (
	"testing"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
	"github.com/lgbarn/chess-strategies-go/internal/engine"
	"github.com/lgbarn/chess-strategies-go/internal/errors"
	"github.com/lgbarn/chess-strategies-go/internal/testutil"
)

// play applies moves given as coordinate text to a copy of start and
// returns them.
func play(t *testing.T, start *chess.Board, texts ...string) []chess.Move {
	t.Helper()
	board := start.Clone()
	var moves []chess.Move
	for _, text := range texts {
		var found bool
		for _, m := range engine.AllMoves(board) {
			if m.String() == text {
				engine.ApplyMove(board, m)
				moves = append(moves, m)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("move %s not available after %v", text, moves)
		}
	}
	return moves
}

// TestAnalyzeGame verifies the move counters
func TestAnalyzeGame(t *testing.T) {
	start := chess.NewBoard()
	moves := play(t, start, "e2e4", "d7d5", "e4d5", "d8d5", "g1f3", "c8g4")

	analysis := AnalyzeGame(start, moves)

	testutil.AssertEqual(t, analysis.Captures, 2)
	testutil.AssertEqual(t, analysis.Castles, 0)
	testutil.AssertEqual(t, analysis.Promotions, 0)
	testutil.AssertEqual(t, len(analysis.Positions), len(moves)+1)
	testutil.AssertEqual(t, analysis.MaxRepetitions, 1)
	testutil.AssertEqual(t, analysis.LongestQuietRun, uint(2))
	testutil.AssertFalse(t, analysis.RepetitionDetected(), "repetition")
	testutil.AssertBoardEqual(t, analysis.FinalBoard, ReplayGame(start, moves))
	testutil.AssertBoardEqual(t, start, chess.NewBoard())
}

// TestAnalyzeGame_Repetition verifies repetition detection
func TestAnalyzeGame_Repetition(t *testing.T) {
	start := chess.NewBoard()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	moves := play(t, start, append(append([]string{}, shuffle...), shuffle...)...)

	analysis := AnalyzeGame(start, moves)

	testutil.AssertTrue(t, analysis.RepetitionDetected(), "repetition")
	testutil.AssertEqual(t, analysis.MaxRepetitions, 3)
	testutil.AssertEqual(t, analysis.Positions[0], analysis.Positions[8])
}

// TestAnalyzeGame_Specials verifies castling, en passant and promotion counts
func TestAnalyzeGame_Specials(t *testing.T) {
	start := testutil.MustBoard(t, chess.White,
		"...k....",
		".P......",
		"........",
		"...pP...",
		"........",
		"........",
		"........",
		"R...K...",
	)
	start.Castling[chess.White] = chess.CastleRights{Queenside: true}
	start.EnPassant = true
	start.EPFile = 3

	moves := play(t, start, "e5d6", "d8e8", "b7b8n", "e8f8", "e1c1")
	analysis := AnalyzeGame(start, moves)

	testutil.AssertEqual(t, analysis.EnPassants, 1)
	testutil.AssertEqual(t, analysis.Captures, 1)
	testutil.AssertEqual(t, analysis.Promotions, 1)
	testutil.AssertEqual(t, analysis.Castles, 1)
	testutil.AssertTrue(t, analysis.UnderpromotionFound(), "underpromotion")
}

// TestValidateGame verifies move validation
func TestValidateGame(t *testing.T) {
	start := chess.NewBoard()
	moves := play(t, start, "e2e4", "e7e5", "g1f3")

	t.Run("valid", func(t *testing.T) {
		result := ValidateGame(start, moves)
		testutil.AssertTrue(t, result.Valid, "valid")
		testutil.AssertEqual(t, result.ErrorPly, 0)
	})

	t.Run("wrong side", func(t *testing.T) {
		bad := append([]chess.Move{}, moves...)
		bad = append(bad, moves[2])
		result := ValidateGame(start, bad)
		testutil.AssertFalse(t, result.Valid, "valid")
		testutil.AssertEqual(t, result.ErrorPly, 4)
	})

	t.Run("move after the end", func(t *testing.T) {
		finished := testutil.MustBoard(t, chess.White,
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"K.......",
		)
		move := chess.Move{Player: chess.White, From: chess.Sq(0, 0), To: chess.Sq(0, 1), Piece: chess.W(chess.King)}
		result := ValidateGame(finished, []chess.Move{move})
		testutil.AssertFalse(t, result.Valid, "valid")
		testutil.AssertEqual(t, result.ErrorPly, 1)
	})
}

func TestValidateMove(t *testing.T) {
	board := chess.NewBoard()
	e4 := play(t, board, "e2e4")[0]

	testutil.AssertNoError(t, ValidateMove(board, e4))

	engine.ApplyMove(board, e4)
	err := ValidateMove(board, e4)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, err.Error(), "e2e4: illegal move")

	finished := testutil.MustBoard(t, chess.White,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"K.......",
	)
	move := chess.Move{Player: chess.White, From: chess.Sq(0, 0), To: chess.Sq(0, 1), Piece: chess.W(chess.King)}
	testutil.AssertErrorIs(t, ValidateMove(finished, move), errors.ErrIllegalMove)
}
