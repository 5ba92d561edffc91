package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewGameError() {
	// Setup
	code := ErrInvalidCard
	message := "card not recognised"

	// Execute
	err := NewGameError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestNewGameErrorf() {
	err := NewGameErrorf(ErrInvalidMove, "unknown move %q", "split")

	s.Equal(ErrInvalidMove, err.Code)
	s.Equal(`unknown move "split"`, err.Message)
}

func (s *ErrorTestSuite) TestWrapError() {
	// Setup
	code := ErrInvalidConfig
	message := "BLACKJACK_BONUS is not a number"
	underlying := errors.New("strconv.ParseFloat: parsing \"abc\": invalid syntax")

	// Execute
	err := WrapError(code, message, underlying)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Equal(underlying, err.Err, "Underlying error should match")
	s.ErrorIs(err, underlying, "Unwrap should expose the underlying error")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *GameError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewGameError(ErrEmptyDeck, "no cards left"),
			expected: "EMPTY_DECK: no cards left",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrInternalError, "reading input", errors.New("unexpected EOF")),
			expected: "INTERNAL_ERROR: reading input (unexpected EOF)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error(), "Error string should match expected format")
		})
	}
}

func (s *ErrorTestSuite) TestIsGameError() {
	// Setup
	gameErr := NewGameError(ErrInvalidMove, "unknown move")
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{
			name:     "Matching game error",
			err:      gameErr,
			code:     ErrInvalidMove,
			expected: true,
		},
		{
			name:     "Different code",
			err:      gameErr,
			code:     ErrInvalidCard,
			expected: false,
		},
		{
			name:     "Wrapped by fmt.Errorf",
			err:      fmt.Errorf("reading move: %w", gameErr),
			code:     ErrInvalidMove,
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			code:     ErrInvalidMove,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			code:     ErrInvalidMove,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, IsGameError(tc.err, tc.code))
		})
	}
}

func (s *ErrorTestSuite) TestAs() {
	// Setup
	gameErr := NewGameError(ErrEmptyDeck, "no cards left")
	var target *GameError

	// Execute & Assert
	s.True(As(fmt.Errorf("dealing: %w", gameErr), &target))
	s.Equal(gameErr, target)

	s.False(As(errors.New("plain"), &target))
	s.False(As(gameErr, nil))
	s.False(As(nil, &target))
}
