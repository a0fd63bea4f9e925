package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEVBoundaries(t *testing.T) {
	assert.Equal(t, EVTierStrong, ClassifyEV(2.5), "inclusive lower bound")
	assert.Equal(t, EVTierGood, ClassifyEV(2.49999))
	assert.Equal(t, EVTierStrong, ClassifyEV(5.0))
	assert.Equal(t, EVTierGood, ClassifyEV(1.5))
	assert.Equal(t, EVTierDecent, ClassifyEV(1.0))
	assert.Equal(t, EVTierDecent, ClassifyEV(1.49))
	assert.Equal(t, EVTierMarginal, ClassifyEV(0.99))
	assert.Equal(t, EVTierMarginal, ClassifyEV(-1.0))
}

func TestClassifyConfidence(t *testing.T) {
	assert.Equal(t, ConfidenceHigh, ClassifyConfidence(80))
	assert.Equal(t, ConfidenceHigh, ClassifyConfidence(100))
	assert.Equal(t, ConfidenceMedium, ClassifyConfidence(60))
	assert.Equal(t, ConfidenceMedium, ClassifyConfidence(79.9))
	assert.Equal(t, ConfidenceLow, ClassifyConfidence(40))
	assert.Equal(t, ConfidenceVeryLow, ClassifyConfidence(39.9))
	assert.Equal(t, ConfidenceVeryLow, ClassifyConfidence(0))
}
