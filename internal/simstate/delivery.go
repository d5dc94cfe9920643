package simstate

import (
	"github.com/netsim-dev/netsim/internal/events"
	"github.com/netsim-dev/netsim/internal/graph"
)

// Schedule computes the packet's arrival time — cursor + extraDelay +
// pkt.DelayMs + the link delay between pkt.Src and pkt.Dst — and
// inserts it into the ordered delivery queue.
func (s *State) Schedule(pkt graph.Packet, extraDelay int) error {
	linkDelay, err := s.store.GetLinkDelay(pkt.Src, pkt.Dst)
	if err != nil {
		return err
	}
	arrival := s.cursor + int64(extraDelay) + int64(pkt.DelayMs) + int64(linkDelay)
	s.queue.push(&scheduledPacket{pkt: pkt, dest: pkt.Dst, arrival: arrival, seq: s.seq})
	s.seq++

	s.store.RecordPacketSent(pkt.Src)
	s.store.RecordLinkTraffic(pkt.Src, pkt.Dst)
	s.publish(events.PacketSent, map[string]any{
		"src": pkt.Src, "dst": pkt.Dst, "protocol": pkt.Protocol, "arrival_ms": arrival,
	})
	return nil
}

// AdvanceTime moves the cursor forward by delta milliseconds and
// delivers every scheduled packet whose arrival time has now passed,
// in non-decreasing arrival-time order with FIFO tie-breaking by
// insertion order. delta == 0 is a no-op on state.
func (s *State) AdvanceTime(delta int) ([]graph.Packet, error) {
	if delta == 0 {
		return nil, nil
	}
	s.cursor += int64(delta)

	var delivered []graph.Packet
	for {
		next := s.queue.peek()
		if next == nil || next.arrival > s.cursor {
			break
		}
		sp := s.queue.pop()
		if err := s.store.Enqueue(sp.dest, sp.pkt); err != nil {
			return delivered, err
		}
		s.store.RecordPacketReceived(sp.dest)
		s.arrived[sp.dest] = true
		delivered = append(delivered, sp.pkt)
	}
	return delivered, nil
}

// HasPacketArrived is a one-shot latch: it reports whether at least
// one packet has been delivered to name since the last call that
// returned true for name, then clears the flag.
func (s *State) HasPacketArrived(name string) bool {
	if s.arrived[name] {
		delete(s.arrived, name)
		return true
	}
	return false
}
