package rngkit

import (
	"math"
	"sort"
)

// Statistical quality assessment over generator output.
//
// Every function in this file is pure: it reads the sequence it is
// handed and returns a fresh result record. Nothing mutates the input;
// functions that need an ordering work on an internal copy, so the
// caller's sequence order (which the runs test depends on) survives.

// ChiSquareResult records one chi-square goodness-of-fit evaluation
// against the uniform distribution.
type ChiSquareResult struct {
	// Statistic is the chi-square value, sum of (observed-expected)^2/expected.
	Statistic float64
	// DegreesOfFreedom is buckets-1.
	DegreesOfFreedom int
	// PValue is the approximate upper-tail probability of the statistic
	// under uniformity (Wilson-Hilferty approximation, see
	// ChiSquareUniformity).
	PValue float64
	// Pass is true iff PValue > 0.05.
	Pass bool
}

// RunsResult records a median-split runs test outcome.
type RunsResult struct {
	// Observed is the counted number of same-sign runs.
	Observed int
	// Expected is the run count expected under independence, 2*n1*n2/n + 1.
	Expected float64
	// Variance is the run-count variance under independence.
	Variance float64
	// ZScore is (Observed - Expected) / sqrt(Variance).
	ZScore float64
	// Pass is true iff |ZScore| < 1.96.
	Pass bool
}

// Assessment is the composite quality record produced by Assess.
type Assessment struct {
	ChiSquare ChiSquareResult
	Runs      RunsResult
	// RunsDegenerate is true when the runs test could not be evaluated
	// (zero run-count variance); the runs sub-test then counts as failed.
	RunsDegenerate bool
	// Entropy is the Shannon entropy of the byte-quantized samples, in
	// bits per byte on the 0-8 scale.
	Entropy float64
	// Score is the 0-100 composite score, monotonic in the number of
	// passing sub-tests.
	Score int
	// Label is the qualitative bucket: excellent, good, fair or poor.
	Label string
}

// Mean returns the arithmetic mean. Fails with ErrEmptyInput when the
// sequence is empty.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data)), nil
}

// Variance returns the population variance (divide by N). Fails with
// ErrEmptyInput when the sequence is empty.
func Variance(data []float64) (float64, error) {
	m, err := Mean(data)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range data {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(data)), nil
}

// StdDev returns the population standard deviation, sqrt(Variance).
func StdDev(data []float64) (float64, error) {
	v, err := Variance(data)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// ShannonEntropy returns the average information content of the byte
// distribution in bits per byte: H = -sum(p*log2(p)) over the non-zero
// bins of a 256-bin histogram. Constant input yields 0; a perfectly
// uniform cycle over all 256 values yields 8.0. Empty input yields 0.
func ShannonEntropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var hist [256]int
	for _, b := range data {
		hist[b]++
	}
	n := float64(len(data))
	h := 0.0
	for _, c := range hist {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}

// ChiSquareUniformity partitions [min,max] of the data into buckets
// equal-width bins, counts occupancy against the uniform expectation
// N/buckets, and returns the chi-square statistic with an approximate
// p-value. The test passes iff p > 0.05.
//
// Degenerate range (min == max) substitutes a unit range instead of
// dividing by zero, which lands every sample in the first bin and
// produces a defined, failing result.
//
// The p-value uses the Wilson-Hilferty cube-root normal transform and a
// polynomial normal-CDF approximation rather than an exact chi-square
// CDF; near the 0.05 boundary it can differ from the exact value in
// roughly the third decimal.
//
// Fails with ErrEmptyInput on empty data and ErrInvalidArgument when
// buckets <= 0.
func ChiSquareUniformity(data []float64, buckets int) (ChiSquareResult, error) {
	var res ChiSquareResult
	if buckets <= 0 {
		return res, wrapInvalidArgument("chi-square bucket count must be positive, got %d", buckets)
	}
	if len(data) == 0 {
		return res, ErrEmptyInput
	}

	min, max := data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		Warning("chi-square over constant data, substituting unit range")
		rng = 1
	}

	observed := make([]int, buckets)
	for _, v := range data {
		idx := int((v - min) / rng * float64(buckets))
		if idx >= buckets {
			idx = buckets - 1
		}
		observed[idx]++
	}

	expected := float64(len(data)) / float64(buckets)
	stat := 0.0
	for _, o := range observed {
		d := float64(o) - expected
		stat += d * d / expected
	}

	df := buckets - 1
	p := chiSquarePValue(stat, df)

	res.Statistic = stat
	res.DegreesOfFreedom = df
	res.PValue = p
	res.Pass = p > chiSquareAlpha
	return res, nil
}

// chiSquarePValue approximates P(X >= x) for a chi-square variable with
// df degrees of freedom via the Wilson-Hilferty transform: the cube
// root of x/df is approximately normal with mean 1-2/(9df) and variance
// 2/(9df).
func chiSquarePValue(x float64, df int) float64 {
	if x <= 0 {
		return 1
	}
	k := float64(df)
	z := (math.Cbrt(x/k) - (1 - 2/(9*k))) / math.Sqrt(2/(9*k))
	return 1 - normalCDF(z)
}

// normalCDF approximates the standard normal CDF with the
// Abramowitz-Stegun 26.2.17 polynomial (absolute error < 7.5e-8).
func normalCDF(z float64) float64 {
	if z < 0 {
		return 1 - normalCDF(-z)
	}
	t := 1 / (1 + 0.2316419*z)
	poly := t * (0.319381530 + t*(-0.356563782+t*(1.781477937+t*(-1.821255978+t*1.330274429))))
	return 1 - math.Exp(-z*z/2)/math.Sqrt(2*math.Pi)*poly
}

// RunsTest splits the data at its median into binary signs (ties go to
// the >= side), counts sign-change runs, and compares the observed run
// count to the expectation under sequential independence. The test
// passes iff |z| < 1.96.
//
// Fails with ErrEmptyInput on empty data and ErrDegenerateInput when
// the run-count variance is zero (for example when every value falls on
// one side of the median).
func RunsTest(data []float64) (RunsResult, error) {
	var res RunsResult
	if len(data) == 0 {
		return res, ErrEmptyInput
	}

	med := median(data)

	signs := make([]bool, len(data))
	n1, n2 := 0, 0
	for i, v := range data {
		above := v >= med
		signs[i] = above
		if above {
			n1++
		} else {
			n2++
		}
	}

	runs := 1
	for i := 1; i < len(signs); i++ {
		if signs[i] != signs[i-1] {
			runs++
		}
	}

	n := float64(len(data))
	f1, f2 := float64(n1), float64(n2)
	expected := 2*f1*f2/n + 1
	variance := 2 * f1 * f2 * (2*f1*f2 - n) / (n * n * (n - 1))
	if n1 == 0 || n2 == 0 || variance <= 0 {
		return res, wrapDegenerateInput("runs test variance is zero (n1=%d, n2=%d)", n1, n2)
	}

	z := (float64(runs) - expected) / math.Sqrt(variance)

	res.Observed = runs
	res.Expected = expected
	res.Variance = variance
	res.ZScore = z
	res.Pass = math.Abs(z) < runsZCritical
	return res, nil
}

// median returns the middle of a sorted copy of data (average of the
// two middle values for even lengths). The input order is untouched.
func median(data []float64) float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Assess combines the chi-square uniformity test, the runs test and a
// byte-entropy measurement into a 0-100 composite score and a
// qualitative label.
//
// The runs test is evaluated first, on the sequence exactly as given,
// since it is the only order-sensitive component; a degenerate runs
// test counts as a failed sub-test rather than an error. Entropy is
// measured over the samples quantized to bytes (floor(v*256), clamped
// to the byte range).
//
// Scoring: each passing test contributes its fixed weight (35 each);
// entropy above 7.5 bits/byte contributes 30, above 6.5 contributes 15.
// The score is monotonic in the number of passing sub-tests, and aside
// from the runs sub-result it is invariant under permutation of data.
//
// Fails with ErrEmptyInput on empty data.
func Assess(data []float64) (Assessment, error) {
	var a Assessment
	if len(data) == 0 {
		return a, ErrEmptyInput
	}

	runs, err := RunsTest(data)
	switch {
	case err == nil:
		a.Runs = runs
	case IsDegenerateInput(err):
		Warning("runs test degenerate during assessment, counting as failed")
		a.RunsDegenerate = true
	default:
		return a, err
	}

	chi, err := ChiSquareUniformity(data, DefaultChiSquareBuckets)
	if err != nil {
		return a, err
	}
	a.ChiSquare = chi

	a.Entropy = ShannonEntropy(quantizeBytes(data))

	score := 0
	if a.ChiSquare.Pass {
		score += scoreWeightChiSquare
	}
	if !a.RunsDegenerate && a.Runs.Pass {
		score += scoreWeightRuns
	}
	switch {
	case a.Entropy > entropyHighThreshold:
		score += scoreWeightEntropy
	case a.Entropy > entropyModerateThreshold:
		score += scoreWeightEntropy / 2
	}
	a.Score = score
	a.Label = scoreLabel(score)
	return a, nil
}

// quantizeBytes maps unit-interval samples onto bytes, clamping
// anything outside [0,1) into range so arbitrary data stays defined.
func quantizeBytes(data []float64) []byte {
	out := make([]byte, len(data))
	for i, v := range data {
		b := int(v * 256)
		if b < 0 {
			b = 0
		} else if b > 255 {
			b = 255
		}
		out[i] = byte(b)
	}
	return out
}

// scoreLabel maps a composite score to its qualitative bucket.
func scoreLabel(score int) string {
	switch {
	case score >= scoreExcellent:
		return "excellent"
	case score >= scoreGood:
		return "good"
	case score >= scoreFair:
		return "fair"
	default:
		return "poor"
	}
}
