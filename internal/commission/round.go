package commission

import "strconv"

// Round rounds v to cents. Halfway cases go to the even cent, judged on the
// exact binary value of v: 0.125 becomes 0.12 while 2.675, stored just below
// the half, becomes 2.67.
func Round(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
