package scenario

import "github.com/netsim-dev/netsim/internal/graph"

// runSetup rebuilds the network from scratch per the scenario's Setup
// section. A dangling link endpoint or invalid node type fails the
// run immediately. Setup always runs before any step.
func runSetup(store *graph.Store, setup Setup) error {
	if err := store.ImportSnapshot(graph.Document{}); err != nil {
		return err
	}
	for _, n := range setup.Nodes {
		node, err := store.AddNode(n.Name, graph.Kind(n.Type), n.IP)
		if err != nil {
			return err
		}
		if n.VLAN != nil {
			if err := store.AssignVLAN(node.Name, *n.VLAN); err != nil {
				return err
			}
		}
		if n.Config != nil {
			cfg := graph.Config{}
			if v, ok := n.Config["mtu"]; ok {
				mtu := toInt(v)
				cfg.MTU = &mtu
			}
			if v, ok := n.Config["queue_size"]; ok {
				qs := toInt(v)
				cfg.QueueSize = &qs
			}
			if err := store.Configure(node.Name, cfg); err != nil {
				return err
			}
		}
	}
	for _, l := range setup.Links {
		if err := store.Connect(l.From, l.To); err != nil {
			return err
		}
		if l.DelayMs != nil {
			if err := store.SetLinkDelay(l.From, l.To, *l.DelayMs); err != nil {
				return err
			}
		}
		if l.BandwidthMbps != nil {
			if err := store.SetBandwidth(l.From, l.To, *l.BandwidthMbps); err != nil {
				return err
			}
		}
		if l.PacketLoss != nil {
			if err := store.SetPacketLoss(l.From, l.To, *l.PacketLoss); err != nil {
				return err
			}
		}
	}
	return nil
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}
