package score

import (
	"math"
	"testing"
	"time"
)

func TestNonSubsequenceScoresZero(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		text  string
		query string
	}{
		{"missing char", "foobar", "fz"},
		{"out of order", "foobar", "bf"},
		{"query longer than text", "ab", "abc"},
		{"empty candidate", "", "a"},
		{"repeat exhausted", "aba", "aaa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, positions := Compute(tt.text, tt.query, now, now, now)
			if got != 0 {
				t.Errorf("Compute(%q, %q) = %v, want exactly 0", tt.text, tt.query, got)
			}
			if positions != nil {
				t.Errorf("Compute(%q, %q) returned positions %v for a non-match", tt.text, tt.query, positions)
			}
		})
	}
}

func TestCaseInsensitiveMatch(t *testing.T) {
	now := time.Now()

	upper, _ := Compute("Hello-World", "HW", now, now, now)
	lower, _ := Compute("hello-world", "hw", now, now, now)

	if upper <= 0 || lower <= 0 {
		t.Fatalf("expected positive scores, got %v and %v", upper, lower)
	}
	if math.Abs(upper-lower) > 1e-12 {
		t.Errorf("case should not affect score: %v vs %v", upper, lower)
	}
}

func TestExactScoreKnownInput(t *testing.T) {
	now := time.Now()

	// "a" vs "a": 1 base + 1 boundary, density 1/1, length 10/11,
	// plus full recency 2 + 5 at zero age.
	got, positions := Compute("a", "a", now, now, now)
	want := 2.0*10.0/11.0 + 7.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Compute(\"a\", \"a\") = %v, want %v", got, want)
	}
	if len(positions) != 1 || positions[0] != 0 {
		t.Errorf("positions = %v, want [0]", positions)
	}
}

func TestEmptyQueryScoresOnRecency(t *testing.T) {
	now := time.Now()

	fresh, positions := Compute("anything", "", now, now, now)
	if fresh <= 0 {
		t.Fatalf("empty query should score > 0, got %v", fresh)
	}
	if positions != nil {
		t.Errorf("empty query should have no match positions, got %v", positions)
	}

	// Strictly decreasing as the project ages on either axis.
	prev := fresh
	for _, age := range []time.Duration{time.Hour, 24 * time.Hour, 30 * 24 * time.Hour, 365 * 24 * time.Hour} {
		got, _ := Compute("anything", "", now.Add(-age), now.Add(-age), now)
		if got >= prev {
			t.Errorf("score at age %v = %v, want < %v (monotonic decay)", age, got, prev)
		}
		prev = got
	}

	olderCreated, _ := Compute("anything", "", now.Add(-48*time.Hour), now, now)
	if olderCreated >= fresh {
		t.Errorf("older created_at should lower the score: %v >= %v", olderCreated, fresh)
	}
	olderAccess, _ := Compute("anything", "", now, now.Add(-48*time.Hour), now)
	if olderAccess >= fresh {
		t.Errorf("older access should lower the score: %v >= %v", olderAccess, fresh)
	}
}

func TestAdjacentBoundaryMatchRanksTop(t *testing.T) {
	now := time.Now()

	candidates := []string{"foobar", "barfoo", "fb-test"}
	scores := make(map[string]float64, len(candidates))
	for _, c := range candidates {
		got, _ := Compute(c, "fb", now, now, now)
		if got <= 0 {
			t.Fatalf("%q should match subsequence \"fb\", got score %v", c, got)
		}
		scores[c] = got
	}

	if scores["fb-test"] < scores["foobar"] || scores["fb-test"] < scores["barfoo"] {
		t.Errorf("fb-test should rank at the top: %v", scores)
	}
}

func TestWordBoundaryBonus(t *testing.T) {
	now := time.Now()

	// Identical lengths; only the boundary before the match differs.
	boundary, _ := Compute("x-api", "a", now, now, now)
	plain, _ := Compute("xzapi", "a", now, now, now)
	if boundary <= plain {
		t.Errorf("boundary match should outscore mid-word match: %v <= %v", boundary, plain)
	}
}

func TestShortNamesPreferred(t *testing.T) {
	now := time.Now()

	short, _ := Compute("app", "app", now, now, now)
	long, _ := Compute("application-service-framework", "app", now, now, now)
	if short <= long {
		t.Errorf("length penalty should favor the short name: %v <= %v", short, long)
	}
}

func TestMatchPositionsAreGreedy(t *testing.T) {
	now := time.Now()

	_, positions := Compute("foobar", "fb", now, now, now)
	want := []int{0, 3}
	if len(positions) != len(want) {
		t.Fatalf("positions = %v, want %v", positions, want)
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("positions = %v, want %v", positions, want)
			break
		}
	}
}
