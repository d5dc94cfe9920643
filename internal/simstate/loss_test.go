package simstate_test

import (
	"testing"

	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/simstate"
)

func TestSampleLoss_ZeroProbabilityNeverLoses(t *testing.T) {
	store := newStoreWithLink(t, 1)
	sim := simstate.New(store, 42)
	for i := 0; i < 50; i++ {
		lost, err := sim.SampleLoss("A", "B")
		if err != nil {
			t.Fatal(err)
		}
		if lost {
			t.Fatalf("zero loss probability must never report loss")
		}
	}
}

func TestSampleLoss_CertainLossAlwaysLoses(t *testing.T) {
	store := newStoreWithLink(t, 1)
	if err := store.SetPacketLoss("A", "B", 1.0); err != nil {
		t.Fatal(err)
	}
	sim := simstate.New(store, 7)
	lost, err := sim.SampleLoss("A", "B")
	if err != nil {
		t.Fatal(err)
	}
	if !lost {
		t.Fatalf("loss probability 1.0 must always report loss")
	}
}

func TestSampleLoss_ReproducibleGivenSameSeed(t *testing.T) {
	store := newStoreWithLink(t, 1)
	if err := store.SetPacketLoss("A", "B", 0.5); err != nil {
		t.Fatal(err)
	}
	a := simstate.New(store, 99)
	b := simstate.New(store, 99)

	for i := 0; i < 20; i++ {
		la, err := a.SampleLoss("A", "B")
		if err != nil {
			t.Fatal(err)
		}
		lb, err := b.SampleLoss("A", "B")
		if err != nil {
			t.Fatal(err)
		}
		if la != lb {
			t.Fatalf("same seed must produce the same loss sequence at step %d", i)
		}
	}
}
