package kernel

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrtPerfectSquare(t *testing.T) {
	assert := assert.New(t)

	for _, x := range []int64{0, 1, 4, 9, 144, 65536} {
		s, err := SqrtToDigits(big.NewInt(x*x), 5)
		assert.Nil(err)
		assert.Equal(big.NewInt(x).String(), s)
	}

	s, err := SqrtToDigits(big.NewInt(4), 5)
	assert.Nil(err)
	assert.Equal("2", s)

	// large enough that a float64 seed would lose the low bits
	x, _ := new(big.Int).SetString("1000000000000000003", 10)
	n := new(big.Int).Mul(x, x)
	s, err = SqrtToDigits(n, 3)
	assert.Nil(err)
	assert.Equal("1000000000000000003", s)
}

func TestSqrtToDigits(t *testing.T) {
	assert := assert.New(t)

	s, err := SqrtToDigits(big.NewInt(2), 5)
	assert.Nil(err)
	assert.Equal("1.41421", s)

	s, err = SqrtToDigits(big.NewInt(2), 10)
	assert.Nil(err)
	assert.Equal("1.4142135623", s)

	s, err = SqrtToDigits(big.NewInt(10), 3)
	assert.Nil(err)
	assert.Equal("3.162", s)

	s, err = SqrtToDigits(big.NewInt(3), 8)
	assert.Nil(err)
	assert.Equal("1.73205080", s)

	s, err = SqrtToDigits(big.NewInt(2), 50)
	assert.Nil(err)
	assert.Equal("1.41421356237309504880168872420969807856967187537694", s)
}

func TestSqrtDigitStability(t *testing.T) {
	assert := assert.New(t)

	for _, n := range []int64{2, 3, 7, 10, 23} {
		lo, err := SqrtToDigits(big.NewInt(n), 5)
		assert.Nil(err)
		hi, err := SqrtToDigits(big.NewInt(n), 12)
		assert.Nil(err)
		assert.True(strings.HasPrefix(hi, lo), "%d: %s should prefix %s", n, lo, hi)
	}
}

func TestSqrtLargeRadicand(t *testing.T) {
	assert := assert.New(t)

	n, _ := new(big.Int).SetString("10000000000000000000000000000000000000001", 10)
	s, err := SqrtToDigits(n, 5)
	assert.Nil(err)
	assert.Equal("100000000000000000000.00000", s)
}

func TestSqrtInvalidInput(t *testing.T) {
	assert := assert.New(t)

	s, err := SqrtToDigits(big.NewInt(-1), 5)
	assert.Equal("", s)
	assert.ErrorIs(err, ErrInvalidRadicand)

	s, err = SqrtToDigits(big.NewInt(2), 0)
	assert.Equal("", s)
	assert.ErrorIs(err, ErrInvalidPrecision)

	s, err = SqrtToDigits(big.NewInt(2), -3)
	assert.Equal("", s)
	assert.ErrorIs(err, ErrInvalidPrecision)
}
