package simstate

// SampleLoss draws from the seeded PRNG and reports whether a packet
// sent from src to dst should be considered lost, per the link's
// configured loss probability. A single seed (passed to New) makes
// the sequence reproducible across test runs.
func (s *State) SampleLoss(src, dst string) (bool, error) {
	p, err := s.store.GetPacketLoss(src, dst)
	if err != nil {
		return false, err
	}
	if p <= 0 {
		return false, nil
	}
	if p >= 1 {
		return true, nil
	}
	return s.rng.Float64() < p, nil
}
