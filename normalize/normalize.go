// Package normalize implements the normalizers (C3): scalar and vector
// functions of the score triple (φ(x,y), φ(x,x), φ(y,y)) that turn a raw
// metric score into a bounded summary such as precision, recall, or
// F-β, plus the @k vector variants used by ranking metrics.
package normalize

import (
	"strconv"
	"strings"

	"github.com/grokify/go-metametric/mmerr"
)

// Scalar normalizes a single score triple to a bounded scalar.
type Scalar interface {
	Normalize(scoreXY, scoreXX, scoreYY float64) float64
	Name() string
}

type none struct{}

// None returns the identity normalizer: it passes score_xy through
// unchanged and is keyed under the empty name.
func None() Scalar { return none{} }

func (none) Normalize(sxy, _, _ float64) float64 { return sxy }
func (none) Name() string                        { return "" }

type jaccard struct{}

// Jaccard returns the normalizer score_xy / (score_xx + score_yy - score_xy).
func Jaccard() Scalar { return jaccard{} }

func (jaccard) Normalize(sxy, sxx, syy float64) float64 { return sxy / (sxx + syy - sxy) }
func (jaccard) Name() string                            { return "jaccard" }

type precision struct{}

// Precision returns the normalizer score_xy / score_xx.
func Precision() Scalar { return precision{} }

func (precision) Normalize(sxy, sxx, _ float64) float64 { return sxy / sxx }
func (precision) Name() string                          { return "precision" }

type recall struct{}

// Recall returns the normalizer score_xy / score_yy.
func Recall() Scalar { return recall{} }

func (recall) Normalize(sxy, _, syy float64) float64 { return sxy / syy }
func (recall) Name() string                          { return "recall" }

// FScore is the weighted harmonic mean of precision and recall with
// weight beta on recall; beta == 1 is the unweighted F1 (also aliased as
// "dice").
type FScore struct {
	Beta float64
}

// NewFScore returns an F-β normalizer. Beta == 1 is F1/Dice.
func NewFScore(beta float64) FScore { return FScore{Beta: beta} }

func (f FScore) Normalize(sxy, sxx, syy float64) float64 {
	if sxy <= 0 {
		return 0
	}
	b2 := f.Beta * f.Beta
	return (1 + b2) * sxy / (b2*syy + sxx)
}

func (f FScore) Name() string {
	if f.Beta == 1 {
		return "f1"
	}
	if f.Beta == float64(int64(f.Beta)) {
		return "f" + strconv.FormatInt(int64(f.Beta), 10)
	}
	return "f" + strconv.FormatFloat(f.Beta, 'g', -1, 64)
}

// Vector normalizes a sequence of partial-sum score triples (cumulative
// φ(x,y)/φ(x,x)/φ(y,y) at each prefix length) into one value per cutoff,
// for the precision@k / recall@k / ranking_ap family.
type Vector interface {
	NormalizeVector(scoreXY, scoreXX, scoreYY []float64) []float64
	Name() string
}

type precisionAtK struct{}

// PrecisionAtK returns the vector normalizer score_xy[k] / score_xx[k]
// for every cutoff k.
func PrecisionAtK() Vector { return precisionAtK{} }

func (precisionAtK) NormalizeVector(sxy, sxx, _ []float64) []float64 {
	return divElementwise(sxy, sxx)
}
func (precisionAtK) Name() string { return "precision@k" }

type recallAtK struct{}

// RecallAtK returns the vector normalizer score_xy[k] / score_yy[k] for
// every cutoff k.
func RecallAtK() Vector { return recallAtK{} }

func (recallAtK) NormalizeVector(sxy, _, syy []float64) []float64 {
	return divElementwise(sxy, syy)
}
func (recallAtK) Name() string { return "recall@k" }

type rankingAP struct{}

// RankingAP returns the average-precision vector normalizer: at each
// cutoff k, the mean of precision@1..k restricted to cutoffs where the
// k-th predicted item is itself a hit (score_xy increased at that step).
func RankingAP() Vector { return rankingAP{} }

func (rankingAP) NormalizeVector(sxy, sxx, _ []float64) []float64 {
	out := make([]float64, len(sxy))
	var sum float64
	var hits float64
	var prevXY float64
	for k := range sxy {
		precisionK := 0.0
		if sxx[k] > 0 {
			precisionK = sxy[k] / sxx[k]
		}
		if sxy[k] > prevXY {
			hits++
			sum += precisionK
		}
		prevXY = sxy[k]
		if hits > 0 {
			out[k] = sum / hits
		}
	}
	return out
}
func (rankingAP) Name() string { return "ranking_ap" }

func divElementwise(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		if b[i] != 0 {
			out[i] = a[i] / b[i]
		}
	}
	return out
}

// ParseName parses a normalizer name string per spec.md §6's grammar:
// none | precision | recall | jaccard | dice | f1 | f<β> | precision@k |
// recall@k | ranking_ap, plus short aliases p, r, j, p@k, r@k. A bare
// "f" is rejected: it collides with the f<β> prefix form.
func ParseName(s string) (any, error) {
	switch s {
	case "none", "":
		return None(), nil
	case "jaccard", "j":
		return Jaccard(), nil
	case "precision", "p":
		return Precision(), nil
	case "recall", "r":
		return Recall(), nil
	case "dice":
		return NewFScore(1), nil
	case "precision@k", "p@k":
		return PrecisionAtK(), nil
	case "recall@k", "r@k":
		return RecallAtK(), nil
	case "ranking_ap":
		return RankingAP(), nil
	case "f":
		return nil, mmerr.NewConfigError("normalizer", s)
	}
	if strings.HasPrefix(s, "f") {
		beta, err := strconv.ParseFloat(s[1:], 64)
		if err != nil {
			return nil, mmerr.NewConfigError("normalizer", s)
		}
		return NewFScore(beta), nil
	}
	return nil, mmerr.NewConfigError("normalizer", s)
}
