package decimalx

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var ErrZeroBase = errors.New("change base is zero")

var hundred = decimal.NewFromInt(100)

// Change 计算相对变化 (cur - prev) / prev
func Change(prev, cur decimal.Decimal) (decimal.Decimal, error) {
	if prev.IsZero() {
		return decimal.Zero, ErrZeroBase
	}
	return cur.Sub(prev).Div(prev), nil
}

// PctChange 百分比变化, 150 相对 100 为 50
func PctChange(prev, cur decimal.Decimal) (decimal.Decimal, error) {
	if prev.IsZero() {
		return decimal.Zero, ErrZeroBase
	}
	return cur.Sub(prev).Mul(hundred).Div(prev), nil
}

// Changes returns the consecutive fractional changes of ds, len(ds)-1 items.
func Changes(ds []decimal.Decimal) ([]decimal.Decimal, error) {
	if len(ds) < 2 {
		return nil, nil
	}
	res := make([]decimal.Decimal, 0, len(ds)-1)
	for i := 1; i < len(ds); i++ {
		c, err := Change(ds[i-1], ds[i])
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

// MeanStd 总体均值和总体标准差 (除以 N)
func MeanStd(ds []decimal.Decimal) (mean, stdDev float64) {
	if len(ds) == 0 {
		return 0, 0
	}
	n := decimal.NewFromInt(int64(len(ds)))

	sum := decimal.Zero
	for _, d := range ds {
		sum = sum.Add(d)
	}
	avg := sum.Div(n)

	variance := decimal.Zero
	for _, d := range ds {
		diff := d.Sub(avg)
		variance = variance.Add(diff.Mul(diff))
	}
	variance = variance.Div(n)

	return avg.InexactFloat64(), math.Sqrt(variance.InexactFloat64())
}
