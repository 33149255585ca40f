package metricpath

import "testing"

func TestRootString(t *testing.T) {
	if got := Root().String(); got != "@" {
		t.Errorf("Root().String() = %q, want %q", got, "@")
	}
	if !Root().IsRoot() {
		t.Error("Root().IsRoot() should be true")
	}
}

func TestRenderAndParseRoundTrip(t *testing.T) {
	cases := []Path{
		Root(),
		Root().Append(Name("a")),
		Root().Append(Name("a")).Append(Name("b")).Append(Index(0)).Append(Name("c")),
		Root().Append(Name("a")).Append(Index(Wildcard)),
	}
	for _, p := range cases {
		s := p.String()
		got := Parse(s)
		if got.String() != s {
			t.Errorf("Parse(%q).String() = %q, want %q", s, got.String(), s)
		}
	}
}

func TestSelects(t *testing.T) {
	selector := Root().Append(Name("a")).Append(Name("b")).Append(Index(Wildcard))
	matches := Root().Append(Name("a")).Append(Name("b")).Append(Index(0))
	nonMatchName := Root().Append(Name("a")).Append(Name("c")).Append(Index(0))
	nonMatchLen := Root().Append(Name("a")).Append(Name("b"))

	if !selector.Selects(matches) {
		t.Error("a.b[*] should select a.b[0]")
	}
	if selector.Selects(nonMatchName) {
		t.Error("a.b[*] should not select a.c[0]")
	}
	if selector.Selects(nonMatchLen) {
		t.Error("a.b[*] should not select a.b (different length)")
	}
}

func TestPathKeyDistinguishesNameVsIndex(t *testing.T) {
	namePath := Root().Append(Name("1"))
	indexPath := Root().Append(Index(1))
	if namePath.Key() == indexPath.Key() {
		t.Error("Key() should distinguish a name component from an index component with the same text")
	}
}
