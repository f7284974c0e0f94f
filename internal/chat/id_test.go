package chat

import "testing"

func TestGenerateIDShape(t *testing.T) {
	src := NewSeededSource(1)
	for i := 0; i < 100; i++ {
		id := GenerateID(src)
		if len(id) != 8 {
			t.Fatalf("id %q has length %d", id, len(id))
		}
		for _, r := range id {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z') {
				t.Fatalf("id %q contains non base-36 rune %q", id, r)
			}
		}
	}
}

func TestGenerateIDDeterministicWithSeed(t *testing.T) {
	a := GenerateID(NewSeededSource(9))
	b := GenerateID(NewSeededSource(9))
	if a != b {
		t.Fatalf("same seed produced %q and %q", a, b)
	}
}

func TestGenerateIDSpreads(t *testing.T) {
	src := NewRandomSource()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		seen[GenerateID(src)] = true
	}
	// Probabilistic, but 1000 collisions-free draws from 36^8 is a given.
	if len(seen) < 990 {
		t.Fatalf("unexpected collision rate: %d distinct of 1000", len(seen))
	}
}
