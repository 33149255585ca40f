package main

import "testing"

func TestDecodeCollection(t *testing.T) {
	got, err := decodeCollection(`[1, 2, "three"]`)
	if err != nil {
		t.Fatalf("decodeCollection: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}

func TestDecodeCollectionRejectsNonArray(t *testing.T) {
	if _, err := decodeCollection(`{"not": "an array"}`); err == nil {
		t.Fatal("expected an error for a non-array JSON value")
	}
}

func TestParseScalarNormalizerRejectsVector(t *testing.T) {
	if _, err := parseScalarNormalizer("precision@k"); err == nil {
		t.Fatal("expected an error for a vector normalizer name")
	}
}

func TestParseScalarNormalizerAcceptsJaccard(t *testing.T) {
	scalar, err := parseScalarNormalizer("jaccard")
	if err != nil {
		t.Fatalf("parseScalarNormalizer: %v", err)
	}
	if scalar.Name() != "jaccard" {
		t.Fatalf("Name() = %q, want jaccard", scalar.Name())
	}
}
