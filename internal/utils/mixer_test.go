package utils

import (
	"math"
	"testing"
)

func TestMixerReproducibility(t *testing.T) {
	seeds := []int32{0, 1, -1, 42, math.MaxInt32, math.MinInt32}

	for _, seed := range seeds {
		m1 := NewMixer(seed)
		m2 := NewMixer(seed)
		for i := 0; i < 1000; i++ {
			v1 := m1.Next()
			v2 := m2.Next()
			if v1 != v2 {
				t.Fatalf("seed %d: mismatch at draw %d: %v != %v", seed, i, v1, v2)
			}
		}
	}
}

func TestMixerRange(t *testing.T) {
	m := NewMixer(7)
	for i := 0; i < 10000; i++ {
		v := m.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() returned %v, want [0, 1)", v)
		}
	}
}

func TestMixerDistinctSeeds(t *testing.T) {
	m1 := NewMixer(1)
	m2 := NewMixer(2)

	// Weak dispersion check: sequences from adjacent seeds should
	// diverge within the first few draws.
	same := 0
	for i := 0; i < 10; i++ {
		if m1.Next() == m2.Next() {
			same++
		}
	}
	if same == 10 {
		t.Error("adjacent seeds produced identical 10-draw sequences")
	}
}

func TestMixerUniformMean(t *testing.T) {
	m := NewMixer(99)
	var sum float64
	n := 100000
	for i := 0; i < n; i++ {
		sum += m.Next()
	}
	mean := sum / float64(n)
	if mean < 0.48 || mean > 0.52 {
		t.Errorf("mean of %d draws = %.4f, want ~0.5", n, mean)
	}
}

func TestNormalMoments(t *testing.T) {
	m := NewMixer(123)
	n := 100000
	mean, std := 25.0, 3.0

	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := m.Normal(mean, std)
		sum += v
		sumSq += v * v
	}

	gotMean := sum / float64(n)
	gotStd := math.Sqrt(sumSq/float64(n) - gotMean*gotMean)

	if math.Abs(gotMean-mean) > 0.1 {
		t.Errorf("sample mean = %.3f, want ~%.1f", gotMean, mean)
	}
	if math.Abs(gotStd-std) > 0.1 {
		t.Errorf("sample std = %.3f, want ~%.1f", gotStd, std)
	}
}

func TestNormalConsumesTwoDraws(t *testing.T) {
	m1 := NewMixer(5)
	m2 := NewMixer(5)

	m1.Normal(0, 1)
	m2.Next()
	m2.Next()

	if m1.Next() != m2.Next() {
		t.Error("Normal should consume exactly two uniform draws")
	}
}

func TestHashIdentityStable(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"simple":     "loc-1",
		"composite":  "loc-1|org-1",
		"dated":      "2024-03-15|loc-1|org-1",
		"unicode":    "café|org-1",
		"whitespace": " loc-1 ",
	}

	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			h1 := HashIdentity(s)
			h2 := HashIdentity(s)
			if h1 != h2 {
				t.Errorf("hash of %q not stable: %d != %d", s, h1, h2)
			}
		})
	}
}

func TestHashIdentityDispersion(t *testing.T) {
	if HashIdentity("loc-1") == HashIdentity("loc-2") {
		t.Error("adjacent identities hashed to the same seed")
	}
	if HashIdentity("loc-1|org-1") == HashIdentity("loc-1|org-2") {
		t.Error("identities differing in last component hashed identically")
	}
}

func TestIdentityComponents(t *testing.T) {
	id := NewIdentity("loc-1", "org-1")
	if id.String() != "loc-1|org-1" {
		t.Errorf("String() = %q, want %q", id.String(), "loc-1|org-1")
	}

	child := id.Child("2024-03-15")
	if child.String() != "loc-1|org-1|2024-03-15" {
		t.Errorf("Child() = %q", child.String())
	}
	// Parent must be unchanged.
	if id.String() != "loc-1|org-1" {
		t.Errorf("Child mutated parent: %q", id.String())
	}
}

func TestIdentityMixerDeterminism(t *testing.T) {
	id := NewIdentity("loc-1", "org-1")
	m1 := id.Mixer()
	m2 := NewIdentity("loc-1", "org-1").Mixer()
	for i := 0; i < 100; i++ {
		if m1.Next() != m2.Next() {
			t.Fatal("identical identities produced different streams")
		}
	}
}

func TestChanceConsumesDrawAtExtremes(t *testing.T) {
	m1 := NewMixer(11)
	m2 := NewMixer(11)

	m1.Chance(0)
	m2.Chance(1)

	// Both must have advanced identically regardless of p.
	if m1.Next() != m2.Next() {
		t.Error("Chance must consume one draw for any probability")
	}
}
