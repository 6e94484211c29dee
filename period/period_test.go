package period

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		unit     Unit
		expected string
	}{
		{name: "days", count: 3, unit: Day, expected: "P3D"},
		{name: "months", count: 6, unit: Month, expected: "P6M"},
		{name: "years", count: 2, unit: Year, expected: "P2Y"},
		{name: "zero days", count: 0, unit: Day, expected: "P0D"},
		{name: "large count", count: 1000, unit: Day, expected: "P1000D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compose(tt.count, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCompose_Errors(t *testing.T) {
	t.Run("negative count", func(t *testing.T) {
		_, err := Compose(-1, Day)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNegativeCount)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := Compose(5, Unit("week"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownUnit)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.False(t, errors.Is(err, ErrMalformedDuration))
	})

	t.Run("empty unit", func(t *testing.T) {
		_, err := Compose(5, "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("designator instead of unit", func(t *testing.T) {
		_, err := Compose(5, Unit("D"))
		assert.ErrorIs(t, err, ErrUnknownUnit)
	})
}

func TestCompose_RoundTrip(t *testing.T) {
	counts := []int{1, 2, 5, 11, 12, 21, 100, 365}

	for _, unit := range []Unit{Day, Month, Year} {
		for _, n := range counts {
			s, err := Compose(n, unit)
			require.NoError(t, err)

			count, got, err := CountAndUnit(s)
			require.NoError(t, err, s)
			assert.Equal(t, n, count, s)
			assert.Equal(t, unit, got, s)
		}
	}
}

func TestCompose_RoundTripZero(t *testing.T) {
	// Нулевой период любого типа сводится к (0, Day).
	tests := []struct {
		unit Unit
		iso  string
	}{
		{Day, "P0D"},
		{Month, "P0M"},
		{Year, "P0Y"},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			s, err := Compose(0, tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.iso, s)

			count, unit, err := CountAndUnit(s)
			require.NoError(t, err)
			assert.Equal(t, 0, count)
			assert.Equal(t, Day, unit)
		})
	}
}

func TestUnit_Designator(t *testing.T) {
	for _, unit := range []Unit{Day, Month, Year} {
		d := unit.Designator()
		back, ok := UnitFromDesignator(d)
		assert.True(t, ok, d)
		assert.Equal(t, unit, back)
	}

	assert.Equal(t, "", Unit("week").Designator())
	assert.False(t, Unit("week").Valid())

	_, ok := UnitFromDesignator("W")
	assert.False(t, ok)
}

func TestPeriod(t *testing.T) {
	t.Run("iso", func(t *testing.T) {
		s, err := Period{Count: 7, Unit: Day}.ISO()
		require.NoError(t, err)
		assert.Equal(t, "P7D", s)

		_, err = Period{Count: -7, Unit: Day}.ISO()
		assert.ErrorIs(t, err, ErrNegativeCount)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "1 год", Period{Count: 1, Unit: Year}.String())
		assert.Equal(t, "3 месяца", Period{Count: 3, Unit: Month}.String())
		assert.Equal(t, "5 дней", Period{Count: 5, Unit: Day}.String())
		assert.Equal(t, "", Period{Count: 5, Unit: "week"}.String())
		assert.Equal(t, "", Period{Count: -1, Unit: Day}.String())
	})
}
