package utils

import "math"

// RoundRate converte uma fração em percentual com uma casa decimal
// (ex: 1/3 → 33.3). math.Round arredonda metades para longe de zero.
func RoundRate(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*1000) / 10
}
