package scenario

import (
	"fmt"

	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/simstate"
	"github.com/netsim-dev/netsim/internal/traversal"
)

// runStep dispatches one step by its action kind.
func runStep(store *graph.Store, sim *simstate.State, step Step) StepResult {
	var passed bool
	var msg string
	var err error

	switch step.Action {
	case "ping":
		passed, msg, err = stepPing(store, step)
	case "send":
		passed, msg, err = stepSend(store, sim, step)
	case "configure":
		passed, msg, err = stepConfigure(store, step)
	case "wait":
		passed, msg, err = stepWait(sim, step)
	case "validate":
		passed, msg, err = stepValidate(store, step)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}

	if err != nil {
		passed = false
		msg = err.Error()
	}
	return StepResult{Name: step.Name, Action: step.Action, Passed: passed, Message: msg}
}

func stepPing(store *graph.Store, step Step) (bool, string, error) {
	from, err := paramString(step.Params, "from")
	if err != nil {
		return false, "", err
	}
	to, err := paramString(step.Params, "to")
	if err != nil {
		return false, "", err
	}
	wantSuccess := paramBool(step.Expect, "success", true)

	_, ok, err := traversal.ShortestHops(storeOracle(store), from, to)
	if err != nil {
		return false, "", err
	}
	if ok == wantSuccess {
		return true, fmt.Sprintf("ping %s->%s: path found=%v as expected", from, to, ok), nil
	}
	return false, fmt.Sprintf("ping %s->%s: path found=%v, expected %v", from, to, ok, wantSuccess), nil
}

func stepSend(store *graph.Store, sim *simstate.State, step Step) (bool, string, error) {
	from, err := paramString(step.Params, "from")
	if err != nil {
		return false, "", err
	}
	to, err := paramString(step.Params, "to")
	if err != nil {
		return false, "", err
	}
	count := paramInt(step.Params, "count", 1)
	sizeBytes := paramInt(step.Params, "sizeBytes", 0)
	minRate := paramFloat(step.Expect, "min_delivery_rate", 0)

	delivered := 0
	for i := 0; i < count; i++ {
		lost, err := sim.SampleLoss(from, to)
		if err != nil {
			return false, "", err
		}
		if lost {
			continue
		}
		pkt := graph.NewPacket(from, to, "tcp", make([]byte, sizeBytes))
		if err := sim.Schedule(pkt, 0); err != nil {
			return false, "", err
		}
		delivered++
	}
	rate := 1.0
	if count > 0 {
		rate = float64(delivered) / float64(count)
	}
	if rate >= minRate {
		return true, fmt.Sprintf("send %s->%s: delivery rate %.2f >= %.2f", from, to, rate, minRate), nil
	}
	return false, fmt.Sprintf("send %s->%s: delivery rate %.2f < %.2f", from, to, rate, minRate), nil
}

func stepConfigure(store *graph.Store, step Step) (bool, string, error) {
	node, err := paramString(step.Params, "node")
	if err != nil {
		return false, "", err
	}
	cfg := graph.Config{}
	if v, ok := step.Params["mtu"]; ok {
		mtu := toInt(v)
		cfg.MTU = &mtu
	}
	if v, ok := step.Params["queue_size"]; ok {
		qs := toInt(v)
		cfg.QueueSize = &qs
	}
	if v, ok := step.Params["vlan"]; ok {
		vlan := toInt(v)
		cfg.VLAN = &vlan
	}
	if err := store.Configure(node, cfg); err != nil {
		return false, "", err
	}
	return true, fmt.Sprintf("configure %s applied", node), nil
}

func stepWait(sim *simstate.State, step Step) (bool, string, error) {
	duration := paramInt(step.Params, "duration_ms", 0)
	if _, err := sim.AdvanceTime(duration); err != nil {
		return false, "", err
	}
	return true, fmt.Sprintf("advanced %dms", duration), nil
}

func stepValidate(store *graph.Store, step Step) (bool, string, error) {
	vtype, err := paramString(step.Params, "type")
	if err != nil {
		return false, "", err
	}
	result := runValidator(store, Validation{Type: vtype, Params: step.Params, Threshold: paramFloat(step.Params, "threshold", 0)})
	return result.Passed, result.Message, nil
}
