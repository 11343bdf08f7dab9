package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ping struct {
	Void
	From string
}

type armorQuery struct {
	Returns[int]
}

var (
	_ Signal       = ping{}
	_ Request[int] = armorQuery{}
)

func TestMarkersAreDistinct(t *testing.T) {
	var p any = ping{}
	_, isRequest := p.(Request[int])
	assert.False(t, isRequest)

	var q any = armorQuery{}
	_, isSignal := q.(Signal)
	assert.False(t, isSignal)
	_, isStringRequest := q.(Request[string])
	assert.False(t, isStringRequest)
}

func TestMixedMarkersSatisfyNeither(t *testing.T) {
	type both struct {
		Void
		Returns[int]
	}
	var b any = both{}
	_, isSignal := b.(Signal)
	_, isRequest := b.(Request[int])
	assert.False(t, isSignal)
	assert.False(t, isRequest)
}
