package chain

import "math/big"

// ToWei converts a human token quantity to minor units. big.Float keeps the
// conversion exact for 18-decimal assets where float64 alone would not.
func ToWei(amount float64, decimals int) *big.Int {
	f := new(big.Float).SetPrec(236).SetFloat64(amount)
	f.Mul(f, pow10f(decimals))
	wei, _ := f.Int(nil)
	return wei
}

// FromWei converts minor units back to a human token quantity.
func FromWei(wei *big.Int, decimals int) float64 {
	f := new(big.Float).SetPrec(236).SetInt(wei)
	f.Quo(f, pow10f(decimals))
	out, _ := f.Float64()
	return out
}

func pow10f(decimals int) *big.Float {
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Float).SetPrec(236).SetInt(p)
}

// Tolerance returns the accepted shortfall for an expected delivery:
// max(1, expected/200), i.e. 0.5% with a one-unit floor.
func Tolerance(expectedWei *big.Int) *big.Int {
	tol := new(big.Int).Quo(expectedWei, big.NewInt(200))
	if tol.Sign() == 0 {
		tol.SetInt64(1)
	}
	return tol
}
