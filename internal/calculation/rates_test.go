package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatutoryCaps(t *testing.T) {
	assert.True(t, Section54ExemptionCap.Equal(decimal.NewFromInt(100000000)),
		"section 54/54F cap should be 10 crore")
	assert.True(t, Section54ECBondCap.Equal(decimal.NewFromInt(5000000)),
		"section 54EC cap should be 50 lakh")
	assert.True(t, onePlusCess.Equal(decimal.NewFromInt(1).Add(CessRate)))
}

func TestNewRegimeCutoff(t *testing.T) {
	assert.Equal(t, time.Date(2024, time.July, 23, 0, 0, 0, 0, time.UTC), NewRegimeCutoff)
}
