package mocks

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
)

// MockRandom returns queued Intn results in order, then 0.
type MockRandom struct {
	IntnResults []int
	intnIndex   int

	// Bounds records the n passed to every Intn call.
	Bounds []int
}

var _ random.Random = (*MockRandom)(nil)

func NewMockRandom(values ...int) *MockRandom {
	return &MockRandom{IntnResults: values}
}

func (that *MockRandom) Intn(n int) int {
	that.Bounds = append(that.Bounds, n)

	if that.intnIndex >= len(that.IntnResults) {
		return 0
	}

	result := that.IntnResults[that.intnIndex]
	that.intnIndex++

	return result
}
