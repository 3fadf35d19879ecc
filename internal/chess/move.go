package chess

// CastleMove describes the rook relocation that accompanies a castling king move.
type CastleMove struct {
	Rook     Piece
	RookFrom Square
	RookTo   Square
}

// Move is a self-contained description of one state transition. It carries
// everything needed to undo itself, so it is passed around by value.
type Move struct {
	// The side making the move.
	Player Colour

	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved, before any promotion.
	Piece Piece

	// The piece captured (NoPiece if no capture) and the square it stood on.
	// CaptureSquare differs from To only for en passant.
	Captured      Piece
	CaptureSquare Square

	// The piece promoted to (NoPiece if not a promotion).
	Promotion Piece

	// The accompanying rook move (zero value if not a castle).
	Castle CastleMove
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return !m.Promotion.IsEmpty()
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return !m.Castle.Rook.IsEmpty()
}

// IsEnPassant returns true if the captured piece is not on the destination square.
func (m Move) IsEnPassant() bool {
	return m.IsCapture() && m.CaptureSquare != m.To
}

// Placed returns the piece that ends up on the destination square.
func (m Move) Placed() Piece {
	if m.IsPromotion() {
		return m.Promotion
	}
	return m.Piece
}

// String returns coordinate text such as "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Kind.Letter() + ('a' - 'A'))
	}
	return s
}
