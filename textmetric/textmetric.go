// Package textmetric adapts a handful of classic string-similarity
// measures into metric.Metric leaves usable wherever a derived Product
// metric bottoms out on a string field. The algorithms themselves are
// carried over from the teacher's evaluation/heuristic package, stripped
// of its single-output BaseMetric/ScoreResult wrapper: each function here
// scores a pair of strings directly and plugs into metric.FromFunction.
package textmetric

import (
	"math"
	"strings"
	"unicode"

	"github.com/grokify/go-metametric/metric"
)

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Levenshtein scores two strings by normalized edit distance: 1 minus the
// edit distance divided by the longer string's length. caseSensitive
// controls whether the comparison folds case first.
func Levenshtein(caseSensitive bool) metric.Metric {
	return metric.FromFunction(func(x, y any) float64 {
		s1, s2 := asString(x), asString(y)
		if !caseSensitive {
			s1, s2 = strings.ToLower(s1), strings.ToLower(s2)
		}
		maxLen := max(len(s1), len(s2))
		if maxLen == 0 {
			return 1.0
		}
		return 1.0 - float64(levenshteinDistance(s1, s2))/float64(maxLen)
	})
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1, r2 := []rune(s1), []rune(s2)
	m, n := len(r1), len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}
	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min(
				d[i-1][j]+1,
				d[i][j-1]+1,
				d[i-1][j-1]+cost,
			)
		}
	}
	return d[m][n]
}

// Jaccard scores two strings by the Jaccard coefficient of their token
// sets. useWords splits on whitespace; otherwise the token set is the
// string's distinct runes.
func Jaccard(caseSensitive, useWords bool) metric.Metric {
	return metric.FromFunction(func(x, y any) float64 {
		s1, s2 := asString(x), asString(y)
		if !caseSensitive {
			s1, s2 = strings.ToLower(s1), strings.ToLower(s2)
		}

		var set1, set2 map[string]bool
		if useWords {
			set1, set2 = wordSet(s1), wordSet(s2)
		} else {
			set1, set2 = charSet(s1), charSet(s2)
		}
		if len(set1) == 0 && len(set2) == 0 {
			return 1.0
		}

		intersection := 0
		for k := range set1 {
			if set2[k] {
				intersection++
			}
		}
		union := len(set1) + len(set2) - intersection
		return float64(intersection) / float64(union)
	})
}

func wordSet(s string) map[string]bool {
	words := strings.Fields(s)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func charSet(s string) map[string]bool {
	set := make(map[string]bool, len(s))
	for _, r := range s {
		set[string(r)] = true
	}
	return set
}

// Cosine scores two strings by the cosine similarity of their word
// frequency vectors.
func Cosine(caseSensitive bool) metric.Metric {
	return metric.FromFunction(func(x, y any) float64 {
		s1, s2 := asString(x), asString(y)
		if !caseSensitive {
			s1, s2 = strings.ToLower(s1), strings.ToLower(s2)
		}
		return cosineScore(s1, s2)
	})
}

func cosineScore(s1, s2 string) float64 {
	vec1, vec2 := wordFrequency(s1), wordFrequency(s2)
	if len(vec1) == 0 || len(vec2) == 0 {
		if len(vec1) == 0 && len(vec2) == 0 {
			return 1.0
		}
		return 0.0
	}

	var dotProduct float64
	for word, count1 := range vec1 {
		if count2, ok := vec2[word]; ok {
			dotProduct += float64(count1 * count2)
		}
	}

	var mag1, mag2 float64
	for _, count := range vec1 {
		mag1 += float64(count * count)
	}
	for _, count := range vec2 {
		mag2 += float64(count * count)
	}
	mag1, mag2 = math.Sqrt(mag1), math.Sqrt(mag2)
	if mag1 == 0 || mag2 == 0 {
		return 0.0
	}
	return dotProduct / (mag1 * mag2)
}

func wordFrequency(s string) map[string]int {
	words := strings.Fields(s)
	freq := make(map[string]int, len(words))
	for _, w := range words {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if w != "" {
			freq[w]++
		}
	}
	return freq
}

// BLEU scores a candidate string against a reference string with a
// simplified n-gram-precision BLEU: geometric mean of 1..maxN n-gram
// precisions times a brevity penalty. x is the candidate, y the
// reference — BLEU is not symmetric.
func BLEU(maxN int) metric.Metric {
	if maxN <= 0 {
		maxN = 4
	}
	return metric.FromFunction(func(x, y any) float64 {
		candidate := strings.ToLower(asString(x))
		reference := strings.ToLower(asString(y))

		candWords := strings.Fields(candidate)
		refWords := strings.Fields(reference)
		if len(candWords) == 0 {
			return 0.0
		}

		bp := brevityPenalty(len(candWords), len(refWords))

		var logPrecSum float64
		for n := 1; n <= maxN; n++ {
			prec := ngramPrecision(candWords, refWords, n)
			if prec > 0 {
				logPrecSum += math.Log(prec)
			} else {
				logPrecSum += math.Log(0.01)
			}
		}
		avgLogPrec := logPrecSum / float64(maxN)
		return bp * math.Exp(avgLogPrec)
	})
}

func brevityPenalty(candLen, refLen int) float64 {
	if candLen > refLen {
		return 1.0
	}
	return math.Exp(1.0 - float64(refLen)/float64(candLen))
}

func ngramPrecision(candidate, reference []string, n int) float64 {
	if len(candidate) < n || len(reference) < n {
		return 0.0
	}
	candNgrams := getNgrams(candidate, n)
	refNgrams := getNgrams(reference, n)

	matches := 0
	for ngram, count := range candNgrams {
		if refCount, ok := refNgrams[ngram]; ok {
			matches += min(count, refCount)
		}
	}
	total := len(candidate) - n + 1
	if total <= 0 {
		return 0.0
	}
	return float64(matches) / float64(total)
}

func getNgrams(words []string, n int) map[string]int {
	ngrams := make(map[string]int)
	for i := 0; i <= len(words)-n; i++ {
		ngram := strings.Join(words[i:i+n], " ")
		ngrams[ngram]++
	}
	return ngrams
}

// ROUGE scores two strings with ROUGE-L: an F-score, weighted by beta,
// of precision and recall over their longest common word subsequence.
func ROUGE(beta float64) metric.Metric {
	if beta <= 0 {
		beta = 1.0
	}
	return metric.FromFunction(func(x, y any) float64 {
		candidate := strings.ToLower(asString(x))
		reference := strings.ToLower(asString(y))

		candWords := strings.Fields(candidate)
		refWords := strings.Fields(reference)
		if len(candWords) == 0 || len(refWords) == 0 {
			if len(candWords) == 0 && len(refWords) == 0 {
				return 1.0
			}
			return 0.0
		}

		lcsLen := lcsLength(candWords, refWords)
		precision := float64(lcsLen) / float64(len(candWords))
		recall := float64(lcsLen) / float64(len(refWords))
		if precision+recall == 0 {
			return 0.0
		}

		betaSq := beta * beta
		return ((1 + betaSq) * precision * recall) / (betaSq*precision + recall)
	})
}

func lcsLength(a, b []string) int {
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}
	return dp[m][n]
}

// FuzzyMatch averages Levenshtein and word-level Jaccard similarity,
// the same blend the original fuzzy-match heuristic used to decide
// whether two strings are "close enough".
func FuzzyMatch() metric.Metric {
	lev := Levenshtein(true)
	jac := Jaccard(true, true)
	return metric.FromFunction(func(x, y any) float64 {
		levSim, _ := lev.Compute(x, y)
		jacSim, _ := jac.Compute(x, y)
		return (levSim + jacSim) / 2
	})
}
