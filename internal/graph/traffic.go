package graph

import "github.com/netsim-dev/netsim/internal/events"

// RecordPacketSent increments name's sent counter.
func (s *Store) RecordPacketSent(name string) {
	s.muNodes.Lock()
	s.packetsSent[name]++
	s.muNodes.Unlock()
	s.publish(events.PacketSent, map[string]any{"from": name})
}

// RecordPacketReceived increments name's received counter.
func (s *Store) RecordPacketReceived(name string) {
	s.muNodes.Lock()
	s.packetsReceived[name]++
	s.muNodes.Unlock()
}

// PacketsSent returns name's sent counter.
func (s *Store) PacketsSent(name string) int {
	s.muNodes.RLock()
	defer s.muNodes.RUnlock()
	return s.packetsSent[name]
}

// PacketsReceived returns name's received counter.
func (s *Store) PacketsReceived(name string) int {
	s.muNodes.RLock()
	defer s.muNodes.RUnlock()
	return s.packetsReceived[name]
}

// RecordLinkTraffic increments the undirected traffic counter for (a, b),
// keyed by (min(a,b), max(a,b)), and the ordered (src, dst) packet
// counter.
func (s *Store) RecordLinkTraffic(a, b string) {
	s.muLinks.Lock()
	s.linkTraffic[orderedLinkKey(a, b)]++
	s.orderedTraffic[orderedKey{a, b}]++
	s.muLinks.Unlock()
}

// LinkTraffic returns the undirected traffic counter between a and b.
func (s *Store) LinkTraffic(a, b string) int {
	s.muLinks.RLock()
	defer s.muLinks.RUnlock()
	return s.linkTraffic[orderedLinkKey(a, b)]
}

// OrderedTraffic returns the number of packets recorded from src to dst
// specifically (as opposed to the undirected link counter).
func (s *Store) OrderedTraffic(src, dst string) int {
	s.muLinks.RLock()
	defer s.muLinks.RUnlock()
	return s.orderedTraffic[orderedKey{src, dst}]
}

// TrafficStats summarizes counters across the whole topology.
type TrafficStats struct {
	NodeSent       map[string]int
	NodeReceived   map[string]int
	LinkTraffic    map[string]int // "a|b" -> count, a<=b
	TotalPackets   int
	AveragePerNode float64
}

// Stats computes a TrafficStats snapshot.
func (s *Store) Stats() TrafficStats {
	s.muNodes.RLock()
	sent := make(map[string]int, len(s.packetsSent))
	for k, v := range s.packetsSent {
		sent[k] = v
	}
	received := make(map[string]int, len(s.packetsReceived))
	for k, v := range s.packetsReceived {
		received[k] = v
	}
	nodeCount := len(s.nodes)
	s.muNodes.RUnlock()

	s.muLinks.RLock()
	links := make(map[string]int, len(s.linkTraffic))
	total := 0
	for k, v := range s.linkTraffic {
		links[k.a+"|"+k.b] = v
		total += v
	}
	s.muLinks.RUnlock()

	avg := 0.0
	if nodeCount > 0 {
		avg = float64(total) / float64(nodeCount)
	}
	return TrafficStats{
		NodeSent:       sent,
		NodeReceived:   received,
		LinkTraffic:    links,
		TotalPackets:   total,
		AveragePerNode: avg,
	}
}

// MostActiveNode returns the node with the highest sent+received total,
// breaking ties by name for determinism.
func (s *Store) MostActiveNode() string {
	s.muNodes.RLock()
	defer s.muNodes.RUnlock()
	best, bestCount := "", -1
	for _, name := range s.order {
		count := s.packetsSent[name] + s.packetsReceived[name]
		if count > bestCount || (count == bestCount && name < best) {
			best, bestCount = name, count
		}
	}
	return best
}

// ResetNodeStatistics zeroes name's sent/received counters.
func (s *Store) ResetNodeStatistics(name string) {
	s.muNodes.Lock()
	delete(s.packetsSent, name)
	delete(s.packetsReceived, name)
	s.muNodes.Unlock()
}

// ResetAllStatistics zeroes every counter in the store.
func (s *Store) ResetAllStatistics() {
	s.muNodes.Lock()
	s.packetsSent = make(map[string]int)
	s.packetsReceived = make(map[string]int)
	s.muNodes.Unlock()

	s.muLinks.Lock()
	s.linkTraffic = make(map[linkKey]int)
	s.orderedTraffic = make(map[orderedKey]int)
	s.muLinks.Unlock()
}

// GetPacketLossRate is an alias for GetPacketLoss kept for parity with
// the package's other "performance metrics" accessors.
func (s *Store) GetPacketLossRate(a, b string) (float64, error) {
	return s.GetPacketLoss(a, b)
}
