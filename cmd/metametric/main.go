// Command metametric is a small demonstration CLI over the scoring
// kernel: it reads two JSON arrays (a predicted collection and a
// reference collection), matches them under a chosen constraint and
// leaf metric, and prints the requested normalized score.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/grokify/go-metametric/collection"
	"github.com/grokify/go-metametric/constraint"
	"github.com/grokify/go-metametric/metric"
	"github.com/grokify/go-metametric/normalize"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "score":
		runScore(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`metametric - structural similarity scoring CLI

Usage:
  metametric score [options]

Options:
  -pred        JSON array: the predicted collection (required)
  -ref         JSON array: the reference collection (required)
  -constraint  Matching constraint: one of 1:1, 1:*, *:1, *:* or <->, <-, ->, ~ (default "1:1")
  -normalize   Normalizer name: jaccard, precision, recall, f1, f<beta> (default "jaccard")
  -format      Output format: text, json (default "text")

Use "metametric help" to show this message.`)
}

func runScore(args []string) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	fs := flag.NewFlagSet("score", flag.ExitOnError)
	predJSON := fs.String("pred", "", "JSON array: the predicted collection")
	refJSON := fs.String("ref", "", "JSON array: the reference collection")
	constraintName := fs.String("constraint", constraint.OneToOne.String(), "matching constraint")
	normalizerName := fs.String("normalize", "jaccard", "normalizer name")
	format := fs.String("format", "text", "output format (text, json)")
	if err := fs.Parse(args); err != nil {
		logger.Error("parsing arguments", "error", err)
		os.Exit(1)
	}

	if *predJSON == "" || *refJSON == "" {
		fmt.Fprintln(os.Stderr, "Error: -pred and -ref are both required")
		fs.Usage()
		os.Exit(1)
	}

	pred, err := decodeCollection(*predJSON)
	if err != nil {
		logger.Error("decoding -pred", "error", err)
		os.Exit(1)
	}
	ref, err := decodeCollection(*refJSON)
	if err != nil {
		logger.Error("decoding -ref", "error", err)
		os.Exit(1)
	}

	kind, err := constraint.Parse(*constraintName)
	if err != nil {
		logger.Error("parsing -constraint", "error", err)
		os.Exit(1)
	}

	scalar, err := parseScalarNormalizer(*normalizerName)
	if err != nil {
		logger.Error("parsing -normalize", "error", err)
		os.Exit(1)
	}

	m := collection.SetMatching(metric.Discrete(), kind)
	sxy, _ := m.Compute(pred, ref)
	sxx := m.ScoreSelf(pred)
	syy := m.ScoreSelf(ref)
	score := scalar.Normalize(sxy, sxx, syy)

	if *format == "json" {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]float64{
			scalar.Name(): score,
			"score_xy":    sxy,
			"score_xx":    sxx,
			"score_yy":    syy,
		})
		return
	}

	fmt.Printf("%s = %v  (score_xy=%v score_xx=%v score_yy=%v)\n", scalar.Name(), score, sxy, sxx, syy)
}

func decodeCollection(raw string) ([]any, error) {
	var out []any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("expected a JSON array: %w", err)
	}
	return out, nil
}

func parseScalarNormalizer(name string) (normalize.Scalar, error) {
	parsed, err := normalize.ParseName(name)
	if err != nil {
		return nil, err
	}
	scalar, ok := parsed.(normalize.Scalar)
	if !ok {
		return nil, fmt.Errorf("%q is a vector normalizer, not a scalar one", name)
	}
	return scalar, nil
}
