package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmplifiedScore(t *testing.T) {
	assert.Equal(t, 14, AmplifiedScore(7, true))
	assert.Equal(t, 3, AmplifiedScore(7, false))
	assert.Equal(t, 0, AmplifiedScore(0, true))
	assert.Equal(t, 0, AmplifiedScore(1, false))
}

func TestRiggedScore(t *testing.T) {
	assert.Equal(t, 7, RiggedScore(5, true))
	assert.Equal(t, 0, RiggedScore(5, false))
	assert.Equal(t, 5, RiggedScore(15, false))
	assert.Equal(t, 0, RiggedScore(10, false))
}
