// Package playlist computes cursor movement and search views over an ordered track list.
package playlist

import (
	"math/rand"
	"time"
)

// Navigator owns the random source used for shuffle draws.
type Navigator struct {
	rng *rand.Rand
}

// NewNavigator seeds a navigator from the wall clock.
func NewNavigator() *Navigator {
	return NewSeededNavigator(time.Now().UnixNano())
}

// NewSeededNavigator returns a navigator with a deterministic shuffle sequence.
func NewSeededNavigator(seed int64) *Navigator {
	return &Navigator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the index that follows current in a list of size entries.
// With shuffle the index is drawn uniformly from [0, size) and may equal current.
// An empty list leaves current untouched.
func (n *Navigator) Next(current, size int, shuffle bool) int {
	if size <= 0 {
		return current
	}
	if shuffle {
		return n.rng.Intn(size)
	}
	return mod(current+1, size)
}

// Previous returns the index before current, wrapping to the end of the list.
func (n *Navigator) Previous(current, size int) int {
	if size <= 0 {
		return current
	}
	return mod(current-1, size)
}

// Last returns the final index of a list, or 0 when it is empty.
func (n *Navigator) Last(size int) int {
	return n.Previous(0, size)
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
