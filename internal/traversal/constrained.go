package traversal

// ConstrainedShortestPath runs Dijkstra ignoring any edge whose
// bandwidth is below minBandwidth. src == dst returns the singleton
// path regardless of any edge constraint.
func ConstrainedShortestPath(o Oracle, src, dst string, minBandwidth int) (path []string, ok bool, err error) {
	if err := o.validate(); err != nil {
		return nil, false, err
	}
	if src == "" || dst == "" {
		return nil, false, ErrEmptySource
	}
	if src == dst {
		return []string{src}, true, nil
	}
	r, err := dijkstra(o, src, func(a, b string) bool {
		return o.Bandwidth(a, b) >= minBandwidth
	})
	if err != nil {
		return nil, false, err
	}
	path, ok = r.pathTo(src, dst)
	return path, ok, nil
}
