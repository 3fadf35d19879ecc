package chess

import (
	"testing"
)

func TestNewEmptyBoard(t *testing.T) {
	b := NewEmptyBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.EnPassant {
			t.Error("EnPassant = true; want false")
		}
		if b.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", b.HalfmoveClock)
		}
		if b.Castling[White] != (CastleRights{}) || b.Castling[Black] != (CastleRights{}) {
			t.Errorf("Castling = %+v; want no rights", b.Castling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			for rank := 0; rank < BoardSize; rank++ {
				if got := b.At(Sq(file, rank)); !got.IsEmpty() {
					t.Errorf("At(%v) = %v; want Empty", Sq(file, rank), got)
				}
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name  string
		sq    Square
		piece Piece
	}{
		// White back rank
		{"white rook a1", Sq(0, 0), W(Rook)},
		{"white knight b1", Sq(1, 0), W(Knight)},
		{"white bishop c1", Sq(2, 0), W(Bishop)},
		{"white queen d1", Sq(3, 0), W(Queen)},
		{"white king e1", Sq(4, 0), W(King)},
		{"white bishop f1", Sq(5, 0), W(Bishop)},
		{"white knight g1", Sq(6, 0), W(Knight)},
		{"white rook h1", Sq(7, 0), W(Rook)},
		// Pawns
		{"white pawn a2", Sq(0, 1), W(Pawn)},
		{"white pawn e2", Sq(4, 1), W(Pawn)},
		{"black pawn a7", Sq(0, 6), B(Pawn)},
		{"black pawn h7", Sq(7, 6), B(Pawn)},
		// Black back rank
		{"black rook a8", Sq(0, 7), B(Rook)},
		{"black queen d8", Sq(3, 7), B(Queen)},
		{"black king e8", Sq(4, 7), B(King)},
		{"black knight g8", Sq(6, 7), B(Knight)},
		// Empty squares
		{"empty e3", Sq(4, 2), NoPiece},
		{"empty d4", Sq(3, 3), NoPiece},
		{"empty c6", Sq(2, 5), NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.At(tt.sq); got != tt.piece {
				t.Errorf("At(%v) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	t.Run("castling rights", func(t *testing.T) {
		for _, c := range []Colour{White, Black} {
			if !b.Castling[c].Kingside || !b.Castling[c].Queenside {
				t.Errorf("Castling[%v] = %+v; want both rights", c, b.Castling[c])
			}
		}
	})

	t.Run("rendering", func(t *testing.T) {
		want := "rnbqkbnr\npppppppp\n........\n........\n........\n........\nPPPPPPPP\nRNBQKBNR\n"
		if got := b.String(); got != want {
			t.Errorf("String() = %q; want %q", got, want)
		}
	})
}

func TestBoardAtSet(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		b := NewEmptyBoard()
		b.Set(Sq(5, 5), B(Knight))
		if got := b.At(Sq(5, 5)); got != B(Knight) {
			t.Errorf("At(f6) = %v; want black knight", got)
		}
	})

	t.Run("off-board reads are empty", func(t *testing.T) {
		b := NewBoard()
		for _, sq := range []Square{Sq(-1, 0), Sq(0, 8), Sq(8, 8)} {
			if got := b.At(sq); !got.IsEmpty() {
				t.Errorf("At(%+v) = %v; want Empty", sq, got)
			}
		}
	})

	t.Run("off-board writes are ignored", func(t *testing.T) {
		b := NewBoard()
		before := *b
		b.Set(Sq(9, 9), W(Queen))
		if *b != before {
			t.Error("Set off the board modified the board")
		}
	})
}

func TestBoardClone(t *testing.T) {
	original := NewBoard()
	original.ToMove = Black
	original.EnPassant = true
	original.EPFile = 3

	clone := original.Clone()
	if *clone != *original {
		t.Fatal("Clone() differs from original")
	}

	clone.Set(Sq(4, 3), W(Queen))
	clone.Castling[White].Kingside = false
	if !original.IsEmpty(Sq(4, 3)) {
		t.Error("modifying clone changed original squares")
	}
	if !original.Castling[White].Kingside {
		t.Error("modifying clone changed original castling rights")
	}
}

func TestHasKing(t *testing.T) {
	b := NewBoard()
	if !b.HasKing(White) || !b.HasKing(Black) {
		t.Fatal("starting position should have both kings")
	}
	b.Set(Sq(4, 7), NoPiece)
	if b.HasKing(Black) {
		t.Error("HasKing(Black) = true after removing the black king")
	}
	if !b.HasKing(White) {
		t.Error("HasKing(White) = false; want true")
	}
}

func TestSquareArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Square
		want Square
	}{
		{"add", Sq(1, 2).Add(Sq(3, 4)), Sq(4, 6)},
		{"sub", Sq(1, 2).Sub(Sq(3, 4)), Sq(-2, -2)},
		{"mul", Sq(1, -1).Mul(3), Sq(3, -3)},
		{"forward white", Sq(4, 1).Add(White.ForwardVector()), Sq(4, 2)},
		{"forward black", Sq(4, 6).Add(Black.ForwardVector()), Sq(4, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v; want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestSquareValidAndString(t *testing.T) {
	tests := []struct {
		sq    Square
		valid bool
		text  string
	}{
		{Sq(0, 0), true, "a1"},
		{Sq(4, 3), true, "e4"},
		{Sq(7, 7), true, "h8"},
		{Sq(8, 0), false, "??"},
		{Sq(0, -1), false, "??"},
	}
	for _, tt := range tests {
		if got := tt.sq.Valid(); got != tt.valid {
			t.Errorf("%+v.Valid() = %v; want %v", tt.sq, got, tt.valid)
		}
		if got := tt.sq.String(); got != tt.text {
			t.Errorf("%+v.String() = %q; want %q", tt.sq, got, tt.text)
		}
	}
}

func TestColourProperties(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() is not an involution")
	}
	if White.Forward() != 1 || Black.Forward() != -1 {
		t.Errorf("Forward() = %d, %d; want 1, -1", White.Forward(), Black.Forward())
	}
	if White.PawnRank() != 1 || Black.PawnRank() != 6 {
		t.Errorf("PawnRank() = %d, %d; want 1, 6", White.PawnRank(), Black.PawnRank())
	}
	if White.BackRank() != 0 || Black.BackRank() != 7 {
		t.Errorf("BackRank() = %d, %d; want 0, 7", White.BackRank(), Black.BackRank())
	}
}

func TestPieceLetters(t *testing.T) {
	for _, l := range []byte("PRNBQKprnbqk") {
		p, ok := PieceFromLetter(l)
		if !ok {
			t.Errorf("PieceFromLetter(%q) failed", l)
			continue
		}
		if got := p.Letter(); got != l {
			t.Errorf("PieceFromLetter(%q).Letter() = %q", l, got)
		}
	}
	if _, ok := PieceFromLetter('x'); ok {
		t.Error("PieceFromLetter('x') succeeded; want failure")
	}
	if got := NoPiece.Letter(); got != '.' {
		t.Errorf("NoPiece.Letter() = %q; want '.'", got)
	}
}
