package llm

import (
	"math"
	"testing"
)

func TestLookupCost_KnownModels(t *testing.T) {
	// Every resolvable provider model and the OpenRouter default must
	// be priced so the stats command can estimate cost.
	ids := []string{
		"claude-sonnet-4-20250514",
		"claude-haiku-4-5-20251001",
		"gpt-4o",
		"gpt-4o-mini",
		"gemini-2.0-flash",
		"google/gemini-2.0-flash-001",
	}
	for _, id := range ids {
		if LookupCost(id) == nil {
			t.Errorf("LookupCost(%q) = nil, want pricing", id)
		}
	}
}

func TestLookupCost_UnknownModel(t *testing.T) {
	if c := LookupCost("mock"); c != nil {
		t.Errorf("LookupCost(mock) = %+v, want nil", c)
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}
	got := c.Cost(1_000_000, 200_000)
	if math.Abs(got-6) > 1e-9 {
		t.Errorf("Cost() = %v, want 6", got)
	}
	if got := (ModelCost{}).Cost(500, 500); got != 0 {
		t.Errorf("Cost() with zero pricing = %v, want 0", got)
	}
}
