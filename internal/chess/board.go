package chess

import "strings"

// CastleRights records which castling options a colour still holds.
type CastleRights struct {
	Kingside  bool
	Queenside bool
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed Squares[file][rank].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling options, indexed by colour. Once cleared a right
	// is never restored by move application.
	Castling [NumColours]CastleRights

	// Is an en passant capture possible? If so EPFile holds the file
	// of the pawn that just advanced two squares.
	EnPassant bool
	EPFile    int

	// The half-move clock since the last capture, pawn move or castle.
	HalfmoveClock uint
}

// NewEmptyBoard creates a board with no pieces, White to move and no castling rights.
func NewEmptyBoard() *Board {
	return &Board{ToMove: White}
}

// NewBoard creates a board set up in the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][White.BackRank()] = W(backRank[file])
		b.Squares[file][White.PawnRank()] = W(Pawn)
		b.Squares[file][Black.PawnRank()] = B(Pawn)
		b.Squares[file][Black.BackRank()] = B(backRank[file])
	}

	b.Castling[White] = CastleRights{Kingside: true, Queenside: true}
	b.Castling[Black] = CastleRights{Kingside: true, Queenside: true}
	b.ToMove = White
	b.EnPassant = false
	b.EPFile = 0
	b.HalfmoveClock = 0
}

// At returns the piece on the given square.
// Squares off the board read as empty.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a piece on the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = p
	}
}

// IsEmpty returns true if the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq).IsEmpty()
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// HasKing returns true if a king of the given colour is on the board.
func (b *Board) HasKing(colour Colour) bool {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[file][rank].Is(King, colour) {
				return true
			}
		}
	}
	return false
}

// ClearEnPassant removes any pending en passant opportunity.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPFile = 0
}

// String renders the board as eight rows of piece letters, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.Squares[file][rank].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
