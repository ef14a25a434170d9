package whatwgurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticVecPushUntilFull(t *testing.T) {
	var v staticVec[uint16]
	for i := 0; i < 8; i++ {
		assert.True(t, v.push(uint16(i)))
	}
	assert.Equal(t, 8, v.len())

	// a ninth push is refused, not a panic, and leaves the vector intact.
	assert.False(t, v.push(99))
	assert.Equal(t, 8, v.len())
	assert.Equal(t, uint16(7), v.at(7))
}

func TestStaticVecSetAndSlice(t *testing.T) {
	var v staticVec[uint64]
	v.push(1)
	v.push(2)
	v.set(0, 10)
	assert.Equal(t, uint64(10), v.at(0))
	assert.Equal(t, []uint64{10, 2}, v.slice())

	// the slice is a copy, not a view.
	s := v.slice()
	s[0] = 99
	assert.Equal(t, uint64(10), v.at(0))
}
