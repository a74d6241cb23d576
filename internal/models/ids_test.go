package models

import (
	"strconv"
	"testing"
)

func TestIDSequence_StrictlyIncreasing(t *testing.T) {
	seq := NewIDSequence()

	var prev int64
	for i := 0; i < 1000; i++ {
		id := seq.Next()
		n, err := strconv.ParseInt(id, 36, 64)
		if err != nil {
			t.Fatalf("ID %q is not a base-36 number: %v", id, err)
		}
		if n <= prev {
			t.Fatalf("ID %d (%q) is not greater than its predecessor", n, id)
		}
		prev = n
	}
}

func TestIDSequence_Unique(t *testing.T) {
	seq := NewIDSequence()
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := seq.Next()
		if seen[id] {
			t.Fatalf("duplicate ID %q after %d mints", id, i)
		}
		seen[id] = true
	}
}

func TestIDSequence_ObserveAdvances(t *testing.T) {
	seq := NewIDSequence()

	// Simulate a restored snapshot whose IDs were minted far in the
	// future (clock skew between save and load).
	future := strconv.FormatInt(1<<62, 36)
	seq.Observe(future)

	id := seq.Next()
	n, err := strconv.ParseInt(id, 36, 64)
	if err != nil {
		t.Fatalf("ID %q is not a base-36 number: %v", id, err)
	}
	if n <= 1<<62 {
		t.Errorf("Next() after Observe(%q) = %q, want something greater", future, id)
	}
}

func TestIDSequence_ObserveIgnoresForeignIDs(t *testing.T) {
	seq := NewIDSequence()
	before, err := strconv.ParseInt(seq.Next(), 36, 64)
	if err != nil {
		t.Fatalf("unexpected ID format: %v", err)
	}

	// Board identities are UUIDs; observing one must not disturb the
	// sequence.
	seq.Observe("3f1b41a0-70cb-4b6e-9e57-2b5f94c7a0de")

	after, err := strconv.ParseInt(seq.Next(), 36, 64)
	if err != nil {
		t.Fatalf("unexpected ID format: %v", err)
	}
	if after <= before {
		t.Errorf("sequence went backwards after observing a UUID: %d then %d", before, after)
	}
}
