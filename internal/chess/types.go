// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours, used to size per-colour arrays.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// ForwardVector returns the single-rank step in this colour's forward direction.
func (c Colour) ForwardVector() Square {
	return Square{File: 0, Rank: c.Forward()}
}

// PawnRank returns the rank this colour's pawns start on.
func (c Colour) PawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

// BackRank returns the rank this colour's pieces start on.
func (c Colour) BackRank() int {
	if c == White {
		return 0
	}
	return 7
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// PromotionKinds lists the kinds a pawn may promote to, in generation order.
var PromotionKinds = [...]Kind{Rook, Knight, Bishop, Queen}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty returns true if p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is returns true if p is a piece of the given kind and colour.
func (p Piece) Is(kind Kind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the FEN-style letter: uppercase for White, lowercase for Black,
// '.' for an empty square.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.IsEmpty() || p.Colour == White {
		return l
	}
	return l + ('a' - 'A')
}

// String returns a readable description such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter parses a FEN-style piece letter.
func PieceFromLetter(l byte) (Piece, bool) {
	colour := White
	if l >= 'a' && l <= 'z' {
		colour = Black
		l -= 'a' - 'A'
	}
	switch l {
	case 'P':
		return Piece{Pawn, colour}, true
	case 'R':
		return Piece{Rook, colour}, true
	case 'N':
		return Piece{Knight, colour}, true
	case 'B':
		return Piece{Bishop, colour}, true
	case 'Q':
		return Piece{Queen, colour}, true
	case 'K':
		return Piece{King, colour}, true
	}
	return NoPiece, false
}

// Constants for board dimensions.
const (
	BoardSize = 8

	ColBase  = 'a'
	RankBase = '1'
)

// Square is a board coordinate. File and Rank are both 0-7 on the board.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{File: file, Rank: rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid returns true if the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Add returns the component-wise sum of two squares.
func (s Square) Add(o Square) Square {
	return Square{File: s.File + o.File, Rank: s.Rank + o.Rank}
}

// Sub returns the component-wise difference of two squares.
func (s Square) Sub(o Square) Square {
	return Square{File: s.File - o.File, Rank: s.Rank - o.Rank}
}

// Mul scales both components by n.
func (s Square) Mul(n int) Square {
	return Square{File: s.File * n, Rank: s.Rank * n}
}

// String returns coordinate text such as "e4", or "??" off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{byte(ColBase + s.File), byte(RankBase + s.Rank)})
}
