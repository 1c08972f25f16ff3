package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStorePutGetRoundTrip(t *testing.T) {
	s := openStore(t)

	in := map[string]any{"label": "flat", "floor": float64(4)}
	require.NoError(t, s.Put("sample", in))

	var out map[string]any
	ok, err := s.Get("sample", &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestStoreMissingKey(t *testing.T) {
	s := openStore(t)

	var out map[string]any
	ok, err := s.Get("never-written", &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreDelete(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Put("doomed", map[string]any{"x": float64(1)}))
	require.NoError(t, s.Delete("doomed"))

	var out map[string]any
	ok, err := s.Get("doomed", &out)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	assert.NoError(t, s.Delete("doomed"))
}

func TestStoreRejectsPathKeys(t *testing.T) {
	s := openStore(t)
	for _, key := range []string{"", "../escape", `a\b`, "a/b"} {
		assert.Error(t, s.Put(key, map[string]any{}), "key %q should be rejected", key)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openStore(t)

	_, ok, err := s.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok, "a fresh store has no session")

	state := &domain.SessionState{
		Property: domain.PropertyDetails{
			PropertyType:  domain.PropertyResidential,
			PurchasePrice: decimal.NewFromInt(5000000),
			SalePrice:     decimal.NewFromInt(12000000),
		},
		ActiveTab: "exemptions",
	}
	require.NoError(t, s.SaveSession(state))

	loaded, ok, err := s.LoadSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "exemptions", loaded.ActiveTab)
	assert.True(t, loaded.Property.PurchasePrice.Equal(decimal.NewFromInt(5000000)))
}

func TestSalaryBridge(t *testing.T) {
	tests := []struct {
		name            string
		record          map[string]any
		available       bool
		expectedTaxable string
		expectedRegime  domain.TaxRegime
	}{
		{
			// 20L CTC less 96000 PF (12% of 40% basic) less 75000
			// standard deduction.
			name:            "New regime record",
			record:          map[string]any{"ctc": 2000000, "taxRegime": "new", "userModified": true},
			available:       true,
			expectedTaxable: "1829000",
			expectedRegime:  domain.RegimeNew,
		},
		{
			name:            "Old regime uses the lower standard deduction",
			record:          map[string]any{"ctc": 2000000, "taxRegime": "old", "userModified": true},
			available:       true,
			expectedTaxable: "1854000",
			expectedRegime:  domain.RegimeOld,
		},
		{
			name:      "Unmodified defaults are not trusted",
			record:    map[string]any{"ctc": 2000000, "taxRegime": "new", "userModified": false},
			available: false,
		},
		{
			name:      "Zero CTC is unavailable",
			record:    map[string]any{"ctc": 0, "taxRegime": "new", "userModified": true},
			available: false,
		},
		{
			name:      "Absent record is unavailable",
			record:    nil,
			available: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openStore(t)
			if tt.record != nil {
				require.NoError(t, s.Put("calc_salary", tt.record))
			}

			bridge := NewSalaryBridge(s)
			data, ok := bridge.Salary()
			assert.Equal(t, tt.available, ok)
			if !tt.available {
				return
			}

			expected, err := decimal.NewFromString(tt.expectedTaxable)
			require.NoError(t, err)
			assert.True(t, data.TaxableIncome.Equal(expected),
				"taxable income = %s, want %s", data.TaxableIncome, expected)
			assert.Equal(t, tt.expectedRegime, data.Regime)
		})
	}
}

func TestSalaryBridgeReReadsStore(t *testing.T) {
	s := openStore(t)
	bridge := NewSalaryBridge(s)

	_, ok := bridge.Salary()
	assert.False(t, ok)

	require.NoError(t, s.Put("calc_salary",
		map[string]any{"ctc": 1000000, "taxRegime": "new", "userModified": true}))
	data, ok := bridge.Salary()
	require.True(t, ok, "the bridge should see writes made after it was created")
	assert.True(t, data.TaxableIncome.Equal(decimal.NewFromInt(877000)))
}
