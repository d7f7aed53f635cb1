package kernel

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/surdtool/surd/common"
	"github.com/surdtool/surd/logger"
)

var (
	ErrInvalidRadicand  = errors.New("invalid radicand")
	ErrInvalidPrecision = errors.New("invalid precision")
)

var one = big.NewInt(1)

// SqrtToDigits computes the square root of n to exactly digits decimal
// digits, driving the continued fraction expansion of √n with exact
// rational arithmetic. The radicand must not be negative and digits
// must be at least 1. A perfect square returns a bare integer string,
// anything else a fixed point string with digits fractional digits.
//
// Each call owns all of its state, so concurrent calls are safe.
func SqrtToDigits(n *big.Int, digits int) (string, error) {
	if n.Sign() < 0 {
		return "", fmt.Errorf("square root of %s undefined over the reals: %w", n, ErrInvalidRadicand)
	}
	if digits < 1 {
		return "", fmt.Errorf("digits %d must be at least 1: %w", digits, ErrInvalidPrecision)
	}

	a0 := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(a0, a0).Cmp(n) == 0 {
		logger.Verbosef("SqrtToDigits(%s, %d) perfect square %s\n", n, digits, a0)
		return a0.String(), nil
	}

	tolDen := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)+1), nil)
	tol := common.NewRatio(one, tolDen)

	m := new(big.Int)
	d := big.NewInt(1)
	terms := []*big.Int{a0}
	var pc *common.Ratio
	for round := 1; ; round++ {
		m.Sub(new(big.Int).Mul(d, terms[len(terms)-1]), m)

		// d always divides n - m*m evenly for the square root
		// continued fraction, and can only reach zero when n is a
		// perfect square, which returned above.
		num := new(big.Int).Mul(m, m)
		num.Sub(n, num)
		q, r := new(big.Int).QuoRem(num, d, new(big.Int))
		if r.Sign() != 0 || q.Sign() == 0 {
			panic(fmt.Sprint(n, m, d, r))
		}
		d = q

		t := new(big.Int).Add(a0, m)
		t.Quo(t, d)
		terms = append(terms, t)

		c := foldConvergent(terms)
		logger.Debugf("SqrtToDigits(%s, %d) round %d convergent %s\n", n, digits, round, c)
		if pc != nil && c.Sub(*pc).Abs().Cmp(tol) < 0 {
			logger.Verbosef("SqrtToDigits(%s, %d) converged after %d rounds\n", n, digits, round)
			return c.StringFixed(digits), nil
		}
		prev := c.Copy()
		pc = &prev
	}
}

// foldConvergent rebuilds the convergent of the partial quotients from
// scratch, folding from the last term backward by reciprocal then add.
func foldConvergent(terms []*big.Int) common.Ratio {
	c := common.NewRatioFromInt(terms[len(terms)-1])
	for i := len(terms) - 2; i >= 0; i-- {
		c.Reciprocal()
		c = common.NewRatioFromInt(terms[i]).Add(c)
	}
	return c
}
