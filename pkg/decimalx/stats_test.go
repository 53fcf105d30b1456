package decimalx

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ints(vs ...int64) []decimal.Decimal {
	res := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		res[i] = decimal.NewFromInt(v)
	}
	return res
}

func TestPctChange(t *testing.T) {
	testCases := []struct {
		name      string
		prev, cur decimal.Decimal
		want      float64
		wantErr   error
	}{
		{name: "volume up", prev: decimal.NewFromInt(100), cur: decimal.NewFromInt(150), want: 50},
		{name: "price down", prev: decimal.NewFromInt(10), cur: decimal.NewFromInt(9), want: -10},
		{name: "unchanged", prev: mustFromString("0.25"), cur: mustFromString("0.25"), want: 0},
		{name: "zero base", prev: decimal.Zero, cur: decimal.NewFromInt(1), wantErr: ErrZeroBase},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PctChange(tc.prev, tc.cur)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.InexactFloat64())
		})
	}
}

func TestChanges(t *testing.T) {
	got, err := Changes(ints(100, 150, 75))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0.5, got[0].InexactFloat64())
	assert.Equal(t, -0.5, got[1].InexactFloat64())

	got, err = Changes(ints(100))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Changes(ints(100, 0, 50))
	assert.ErrorIs(t, err, ErrZeroBase)
}

func TestMeanStd(t *testing.T) {
	mean, std := MeanStd([]decimal.Decimal{mustFromString("0.5"), mustFromString("-0.5")})
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 0.5, std)

	mean, std = MeanStd(ints(2, 4, 4, 4, 5, 5, 7, 9))
	assert.Equal(t, 5.0, mean)
	assert.Equal(t, 2.0, std)

	mean, std = MeanStd(nil)
	assert.Zero(t, mean)
	assert.Zero(t, std)
}

func TestFromStrings(t *testing.T) {
	ds, err := FromStrings("1.5", "2")
	require.NoError(t, err)
	assert.True(t, ds[0].Equal(mustFromString("1.5")))
	assert.True(t, ds[1].Equal(decimal.NewFromInt(2)))

	_, err = FromStrings("1", "abc")
	assert.Error(t, err)
}
