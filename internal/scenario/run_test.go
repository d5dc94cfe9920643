package scenario_test

import (
	"testing"

	"github.com/netsim-dev/netsim/internal/graph"
	"github.com/netsim-dev/netsim/internal/scenario"
	"github.com/netsim-dev/netsim/internal/simstate"
)

func twoHostScenario() scenario.Scenario {
	delay := 10
	return scenario.Scenario{
		Name: "two-hosts",
		Setup: scenario.Setup{
			Nodes: []scenario.NodeSetup{
				{Name: "A", Type: "host", IP: "10.0.0.1"},
				{Name: "B", Type: "host", IP: "10.0.0.2"},
			},
			Links: []scenario.LinkSetup{
				{From: "A", To: "B", DelayMs: &delay},
			},
		},
		Steps: []scenario.Step{
			{Name: "ping-ok", Action: "ping", Params: map[string]any{"from": "A", "to": "B"}},
			{Name: "wait", Action: "wait", Params: map[string]any{"duration_ms": 10}},
		},
		Validation: []scenario.Validation{
			{Type: "connectivity", Params: map[string]any{"from": "A", "to": "B"}},
			{Type: "latency", Params: map[string]any{"a": "A", "b": "B"}, Threshold: 20},
		},
	}
}

func TestRun_AllStepsAndValidationsPass(t *testing.T) {
	store := graph.New()
	sim := simstate.New(store, 1)
	result, err := scenario.Run(store, sim, twoHostScenario())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Passed {
		t.Fatalf("expected an all-passing run: %+v", result)
	}
	if len(result.Steps) != 2 || len(result.Validations) != 2 {
		t.Fatalf("unexpected result shape: %+v", result)
	}
}

func TestRun_FailedStepDoesNotAbortLaterSteps(t *testing.T) {
	store := graph.New()
	sim := simstate.New(store, 1)
	s := twoHostScenario()
	s.Steps = append([]scenario.Step{{
		Name: "ping-isolated", Action: "ping",
		Params: map[string]any{"from": "A", "to": "ghost"},
	}}, s.Steps...)
	result, err := scenario.Run(store, sim, s)
	if err != nil {
		t.Fatal(err)
	}
	if result.Passed {
		t.Fatalf("expected overall failure due to the bad ping step")
	}
	if len(result.Steps) != 3 {
		t.Fatalf("the steps after the failed one should still have run, got %d", len(result.Steps))
	}
}

func TestRun_VLANValidator(t *testing.T) {
	s := twoHostScenario()
	vA, vB := 10, 20
	s.Setup.Nodes = append(s.Setup.Nodes,
		scenario.NodeSetup{Name: "C", Type: "host", VLAN: &vA},
		scenario.NodeSetup{Name: "D", Type: "host", VLAN: &vB},
	)
	s.Setup.Nodes[0].VLAN = &vA
	s.Setup.Links = append(s.Setup.Links, scenario.LinkSetup{From: "A", To: "C"}, scenario.LinkSetup{From: "A", To: "D"})
	s.Validation = []scenario.Validation{
		{Type: "vlan", Params: map[string]any{"same_a": "A", "same_b": "C", "diff_a": "A", "diff_b": "D"}},
	}

	store := graph.New()
	sim := simstate.New(store, 1)
	result, err := scenario.Run(store, sim, s)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Validations[0].Passed {
		t.Fatalf("expected vlan validator to pass: %+v", result.Validations[0])
	}
}

func TestDecodeYAML_RoundTrip(t *testing.T) {
	original := twoHostScenario()
	data, err := scenario.EncodeYAML(original)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := scenario.DecodeYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Name != original.Name || len(decoded.Setup.Nodes) != len(original.Setup.Nodes) {
		t.Fatalf("round-trip mismatch: %+v", decoded)
	}
}
