package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chess-strategies-go/internal/chess"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Sq(4, 3), chess.Sq(4, 3), "square %s", "e4")
}

func TestAssertBoardEqual_Success(t *testing.T) {
	b := chess.NewBoard()
	AssertBoardEqual(t, b.Clone(), b)
	AssertBoardEqual(t, b, chess.NewBoard(), "fresh boards")
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertErrorIs(t, sentinel, sentinel, "direct")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertTrue(t, len("hello") == 5, "length")
	AssertFalse(t, false)
	AssertFalse(t, 1 == 2, "arithmetic")
}

func TestAssertPanicsWith_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertPanicsWith(t, sentinel, func() {
		panic(fmt.Errorf("context: %w", sentinel))
	})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
