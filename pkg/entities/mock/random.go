package mock

import (
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/stretchr/testify/mock"
)

var _ entities.RandomSource = (*RandomSource)(nil)

// RandomSource is a mock implementation of entities.RandomSource
type RandomSource struct {
	mock.Mock
}

func New() *RandomSource {
	return &RandomSource{}
}

func (r *RandomSource) Intn(n int) int {
	args := r.Called(n)
	return args.Int(0)
}
