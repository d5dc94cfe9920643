package scenario

import (
	"fmt"

	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/traversal"
)

// runValidator dispatches one validation by its type.
func runValidator(store *graph.Store, v Validation) ValidationResult {
	var passed bool
	var msg string
	var details map[string]any
	var err error

	switch v.Type {
	case "connectivity":
		passed, msg, err = validateConnectivity(store, v, true)
	case "isolation":
		passed, msg, err = validateConnectivity(store, v, false)
	case "latency":
		passed, msg, err = validateLatency(store, v)
	case "packet_loss":
		passed, msg, err = validatePacketLoss(store, v)
	case "throughput":
		passed, msg, err = validateThroughput(store, v)
	case "vlan":
		passed, msg, err = validateVLAN(store, v)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownValidator, v.Type)
	}

	if err != nil {
		passed = false
		msg = err.Error()
	}
	return ValidationResult{Type: v.Type, Passed: passed, Message: msg, Details: details}
}

func validateConnectivity(store *graph.Store, v Validation, wantReachable bool) (bool, string, error) {
	from, err := paramString(v.Params, "from")
	if err != nil {
		return false, "", err
	}
	to, err := paramString(v.Params, "to")
	if err != nil {
		return false, "", err
	}
	_, ok, err := traversal.ShortestHops(storeOracle(store), from, to)
	if err != nil {
		return false, "", err
	}
	if ok == wantReachable {
		return true, fmt.Sprintf("%s<->%s reachability as expected (%v)", from, to, ok), nil
	}
	return false, fmt.Sprintf("%s<->%s reachable=%v, expected %v", from, to, ok, wantReachable), nil
}

func validateLatency(store *graph.Store, v Validation) (bool, string, error) {
	a, err := paramString(v.Params, "a")
	if err != nil {
		return false, "", err
	}
	b, err := paramString(v.Params, "b")
	if err != nil {
		return false, "", err
	}
	delay, err := store.GetLinkDelay(a, b)
	if err != nil {
		return false, "", err
	}
	if float64(delay) <= v.Threshold {
		return true, fmt.Sprintf("delay %s-%s = %dms <= %.0fms", a, b, delay, v.Threshold), nil
	}
	return false, fmt.Sprintf("delay %s-%s = %dms > %.0fms", a, b, delay, v.Threshold), nil
}

func validatePacketLoss(store *graph.Store, v Validation) (bool, string, error) {
	a, err := paramString(v.Params, "a")
	if err != nil {
		return false, "", err
	}
	b, err := paramString(v.Params, "b")
	if err != nil {
		return false, "", err
	}
	loss, err := store.GetPacketLossRate(a, b)
	if err != nil {
		return false, "", err
	}
	if loss <= v.Threshold {
		return true, fmt.Sprintf("loss %s-%s = %.3f <= %.3f", a, b, loss, v.Threshold), nil
	}
	return false, fmt.Sprintf("loss %s-%s = %.3f > %.3f", a, b, loss, v.Threshold), nil
}

func validateThroughput(store *graph.Store, v Validation) (bool, string, error) {
	a, err := paramString(v.Params, "a")
	if err != nil {
		return false, "", err
	}
	b, err := paramString(v.Params, "b")
	if err != nil {
		return false, "", err
	}
	traffic := store.LinkTraffic(a, b)
	if float64(traffic) >= v.Threshold {
		return true, fmt.Sprintf("traffic %s-%s = %d >= %.0f", a, b, traffic, v.Threshold), nil
	}
	return false, fmt.Sprintf("traffic %s-%s = %d < %.0f", a, b, traffic, v.Threshold), nil
}

func validateVLAN(store *graph.Store, v Validation) (bool, string, error) {
	sameA, err := paramString(v.Params, "same_a")
	if err != nil {
		return false, "", err
	}
	sameB, err := paramString(v.Params, "same_b")
	if err != nil {
		return false, "", err
	}
	diffA, err := paramString(v.Params, "diff_a")
	if err != nil {
		return false, "", err
	}
	diffB, err := paramString(v.Params, "diff_b")
	if err != nil {
		return false, "", err
	}
	sameOK, err := store.CanCommunicate(sameA, sameB)
	if err != nil {
		return false, "", err
	}
	diffOK, err := store.CanCommunicate(diffA, diffB)
	if err != nil {
		return false, "", err
	}
	if sameOK && !diffOK {
		return true, "same-VLAN pair communicates, different-VLAN pair does not", nil
	}
	return false, fmt.Sprintf("same-VLAN communicates=%v, different-VLAN communicates=%v", sameOK, diffOK), nil
}
