package hashing

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
)

// zobristSeed fixes the key table, so hashes are stable between runs.
const zobristSeed = 0x5A0B_2157

type zobristKeys struct {
	pieces    [chess.NumColours][chess.King + 1][chess.BoardSize][chess.BoardSize]uint64
	castling  [chess.NumColours][2]uint64
	enPassant [chess.BoardSize]uint64
	whiteMove uint64
}

var zobrist = newZobristKeys(zobristSeed)

func newZobristKeys(seed uint64) *zobristKeys {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	rng := frand.NewCustom(key[:], 1024, 12)

	next := func() uint64 {
		var buf [8]byte
		_, _ = rng.Read(buf[:])
		return binary.LittleEndian.Uint64(buf[:])
	}

	keys := &zobristKeys{}
	for c := range keys.pieces {
		for k := chess.Pawn; k <= chess.King; k++ {
			for f := 0; f < chess.BoardSize; f++ {
				for r := 0; r < chess.BoardSize; r++ {
					keys.pieces[c][k][f][r] = next()
				}
			}
		}
	}
	for c := range keys.castling {
		keys.castling[c][0] = next()
		keys.castling[c][1] = next()
	}
	for f := range keys.enPassant {
		keys.enPassant[f] = next()
	}
	keys.whiteMove = next()
	return keys
}

// GenerateZobristHash returns the Zobrist hash of a position: the pieces,
// the side to move, castling rights and the en passant file. The halfmove
// clock is not part of the hash.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for f := 0; f < chess.BoardSize; f++ {
		for r := 0; r < chess.BoardSize; r++ {
			p := board.Squares[f][r]
			if p.IsEmpty() {
				continue
			}
			hash ^= zobrist.pieces[p.Colour][p.Kind][f][r]
		}
	}
	for c, rights := range board.Castling {
		if rights.Kingside {
			hash ^= zobrist.castling[c][0]
		}
		if rights.Queenside {
			hash ^= zobrist.castling[c][1]
		}
	}
	if board.EnPassant && board.EPFile >= 0 && board.EPFile < chess.BoardSize {
		hash ^= zobrist.enPassant[board.EPFile]
	}
	if board.ToMove == chess.White {
		hash ^= zobrist.whiteMove
	}
	return hash
}

// WeakHash is a cheap additive hash of the piece placement only.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for f := 0; f < chess.BoardSize; f++ {
		for r := 0; r < chess.BoardSize; r++ {
			p := board.Squares[f][r]
			if p.IsEmpty() {
				continue
			}
			code := uint32(p.Kind)<<1 | uint32(p.Colour)
			hash += code * uint32(f*chess.BoardSize+r+1) * 0x9E37
		}
	}
	return hash
}
