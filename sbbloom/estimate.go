package sbbloom

import (
	"fmt"
	"math"
)

// EstimateFalsePositiveRate returns the expected probability that
// a value never added is reported as present,
// after n distinct values were added to a filter of bitCount bits.
//
// Each digest bit is independently set with probability 1/2,
// so a filter bit stays clear after n insertions with probability 2^-n,
// and a query fails on that bit with probability 2^-(n+1).
// The estimate is therefore (1 - 2^-(n+1))^bitCount.
func EstimateFalsePositiveRate(bitCount, n uint) float64 {
	miss := math.Ldexp(1, -int(n)-1)
	return math.Exp(float64(bitCount) * math.Log1p(-miss))
}

// MaxElements returns the largest number of insertions
// for which [EstimateFalsePositiveRate] stays at or below p.
//
// MaxElements panics unless 0 < p < 1.
func MaxElements(bitCount uint, p float64) uint {
	if !(p > 0 && p < 1) {
		panic(fmt.Errorf("false positive rate must be in (0, 1) (got %v)", p))
	}

	// The estimate reaches exactly 1 once 2^-(n+1) underflows,
	// so this always terminates for p < 1.
	var n uint
	for EstimateFalsePositiveRate(bitCount, n+1) <= p {
		n++
	}
	return n
}
