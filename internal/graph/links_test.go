package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnect_SelfFails(t *testing.T) {
	s := New()
	mustAdd(t, s, "A")
	require.ErrorIs(t, s.Connect("A", "A"), ErrSelfConnect)
}

func TestConnect_Idempotent(t *testing.T) {
	s := New()
	mustAdd(t, s, "A", "B")
	require.NoError(t, s.Connect("A", "B"))
	require.NoError(t, s.Connect("A", "B")) // re-connect is a no-op, not an error

	require.NoError(t, s.SetLinkDelay("A", "B", 42))
	require.NoError(t, s.Connect("A", "B")) // must not reset attributes
	delay, err := s.GetLinkDelay("A", "B")
	require.NoError(t, err)
	require.Equal(t, 42, delay)
}

func TestDisconnect_RoundTrip(t *testing.T) {
	s := New()
	mustAdd(t, s, "A", "B")
	require.NoError(t, s.Connect("A", "B"))
	require.NoError(t, s.Disconnect("A", "B"))

	_, err := s.GetLinkDelay("A", "B")
	require.ErrorIs(t, err, ErrEdgeNotFound)

	na, _ := s.GetNeighbors("A")
	require.NotContains(t, na, "B")
}

func TestDisconnect_NoEdgeFails(t *testing.T) {
	s := New()
	mustAdd(t, s, "A", "B")
	err := s.Disconnect("A", "B")
	if !errors.Is(err, ErrDisconnected) {
		t.Fatalf("expected ErrDisconnected, got %v", err)
	}
}

func TestLinkAttributes_SymmetricAndDefaulted(t *testing.T) {
	s := New()
	mustAdd(t, s, "A", "B")
	require.NoError(t, s.Connect("A", "B"))

	delay, err := s.GetLinkDelay("A", "B")
	require.NoError(t, err)
	require.Zero(t, delay)

	require.NoError(t, s.SetLinkDelay("A", "B", 10))
	require.NoError(t, s.SetBandwidth("A", "B", 100))
	require.NoError(t, s.SetPacketLoss("A", "B", 0.5))

	dAB, _ := s.GetLinkDelay("A", "B")
	dBA, _ := s.GetLinkDelay("B", "A")
	require.Equal(t, dAB, dBA)

	bAB, _ := s.GetBandwidth("A", "B")
	bBA, _ := s.GetBandwidth("B", "A")
	require.Equal(t, bAB, bBA)

	lAB, _ := s.GetPacketLoss("A", "B")
	lBA, _ := s.GetPacketLoss("B", "A")
	require.Equal(t, lAB, lBA)
}

func TestSetLinkDelay_RejectsNegative(t *testing.T) {
	s := New()
	mustAdd(t, s, "A", "B")
	require.NoError(t, s.Connect("A", "B"))
	require.ErrorIs(t, s.SetLinkDelay("A", "B", -1), ErrInvalidDelay)
}

func TestSetPacketLoss_RejectsOutOfRange(t *testing.T) {
	s := New()
	mustAdd(t, s, "A", "B")
	require.NoError(t, s.Connect("A", "B"))
	require.ErrorIs(t, s.SetPacketLoss("A", "B", 1.5), ErrInvalidLoss)
	require.ErrorIs(t, s.SetPacketLoss("A", "B", -0.1), ErrInvalidLoss)
}

func TestSetAttribute_RequiresExistingEdge(t *testing.T) {
	s := New()
	mustAdd(t, s, "A", "B")
	require.ErrorIs(t, s.SetLinkDelay("A", "B", 5), ErrEdgeNotFound)
}
