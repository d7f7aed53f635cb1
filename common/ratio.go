package common

import (
	"fmt"
	"math/big"
	"strings"
)

// Ratio is an exact rational number. Values are not kept in lowest
// terms between operations; only comparisons must be exact.
type Ratio struct {
	num big.Int
	den big.Int
}

func NewRatio(num, den *big.Int) (v Ratio) {
	if den.Sign() == 0 {
		panic(fmt.Sprint(num, den))
	}
	v.num.Set(num)
	v.den.Set(den)
	return
}

func NewRatioFromInt(x *big.Int) (v Ratio) {
	v.num.Set(x)
	v.den.SetInt64(1)
	return
}

func GCD(m, n *big.Int) *big.Int {
	a := new(big.Int).Abs(m)
	b := new(big.Int).Abs(n)
	for b.Sign() != 0 {
		a.Mod(a, b)
		a, b = b, a
	}
	return a
}

func LCM(a, b *big.Int) *big.Int {
	g := GCD(a, b)
	if g.Sign() == 0 {
		panic(fmt.Sprint(a, b))
	}
	v := new(big.Int).Mul(a, b)
	v.Abs(v)
	return v.Quo(v, g)
}

// Add returns x + y with the lcm of both denominators as the result
// denominator. The scaled quotients divide evenly by construction.
func (x Ratio) Add(y Ratio) (v Ratio) {
	lcd := LCM(&x.den, &y.den)
	a := new(big.Int).Quo(lcd, &x.den)
	a.Mul(a, &x.num)
	b := new(big.Int).Quo(lcd, &y.den)
	b.Mul(b, &y.num)
	v.num.Add(a, b)
	v.den.Set(lcd)
	return
}

func (x Ratio) Sub(y Ratio) Ratio {
	return x.Add(y.Neg())
}

func (x Ratio) Neg() (v Ratio) {
	v.num.Neg(&x.num)
	v.den.Set(&x.den)
	return
}

// Cmp compares x and y over their common denominator. The lcm is
// always positive, so the sign of the scaled numerators is correct for
// any sign placement in num or den.
func (x Ratio) Cmp(y Ratio) int {
	lcd := LCM(&x.den, &y.den)
	a := new(big.Int).Quo(lcd, &x.den)
	a.Mul(a, &x.num)
	b := new(big.Int).Quo(lcd, &y.den)
	b.Mul(b, &y.num)
	return a.Cmp(b)
}

func (x Ratio) Abs() (v Ratio) {
	v.num.Abs(&x.num)
	v.den.Abs(&x.den)
	return
}

// Reciprocal swaps numerator and denominator in place. This is the only
// mutating operation on Ratio.
func (x *Ratio) Reciprocal() {
	if x.num.Sign() == 0 {
		panic(fmt.Sprint(&x.num, &x.den))
	}
	x.num, x.den = x.den, x.num
}

// Copy returns an independent snapshot of x. Mutating x afterwards
// never changes the copy.
func (x Ratio) Copy() (v Ratio) {
	v.num.Set(&x.num)
	v.den.Set(&x.den)
	return
}

func (x Ratio) Sign() int {
	return x.num.Sign() * x.den.Sign()
}

func (x Ratio) String() string {
	s := ""
	if x.Sign() < 0 {
		s = "-"
	}
	n := new(big.Int).Abs(&x.num)
	d := new(big.Int).Abs(&x.den)
	return s + n.String() + "/" + d.String()
}

// StringFixed renders x as a decimal string truncated to exactly digits
// fractional digits. x must not be negative.
func (x Ratio) StringFixed(digits int) string {
	if x.Sign() < 0 || digits < 1 {
		panic(fmt.Sprint(&x.num, &x.den, digits))
	}
	v := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	v.Mul(v, new(big.Int).Abs(&x.num))
	v.Quo(v, new(big.Int).Abs(&x.den))
	s := v.String()
	p := len(s) - digits
	if p > 0 {
		return s[:p] + "." + s[p:]
	}
	return "0." + strings.Repeat("0", -p) + s
}
