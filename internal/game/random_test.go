package game

import "testing"

func TestSeededRNGDeterministic(t *testing.T) {
	rngA := seededRNG(12345)
	rngB := seededRNG(12345)

	for i := 0; i < 20; i++ {
		gotA := rngA.IntN(100000)
		gotB := rngB.IntN(100000)
		if gotA != gotB {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %d != %d", i, gotA, gotB)
		}
	}
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	a := seedWord(99, "a")
	b := seedWord(99, "b")
	if a == b {
		t.Fatalf("expected different seed words for different salts")
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	a, err := Generate(7, 3, 10, nil, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(7, 3, 10, nil, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	ids := a.EntityIDs()
	if len(ids) != 4 || ids[0] != 1 {
		t.Fatalf("expected player plus 3 containers, got %v", ids)
	}
	for _, id := range ids {
		ia, _ := a.Items(id)
		ib, _ := b.Items(id)
		if len(ia) != len(ib) {
			t.Fatalf("entity %d: item count differs %d != %d", id, len(ia), len(ib))
		}
		for i := range ia {
			if ia[i].Symbol != ib[i].Symbol || ia[i].Instance != ib[i].Instance || ia[i].Count != ib[i].Count {
				t.Fatalf("entity %d item %d differs: %+v vs %+v", id, i, ia[i], ib[i])
			}
		}
	}
}

func TestGenerateRejectsEmptyInventories(t *testing.T) {
	if _, err := Generate(1, 1, 0, nil, nil); err == nil {
		t.Fatalf("expected error for perEntity 0")
	}
}
