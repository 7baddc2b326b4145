package core

import "testing"

func steps(names ...string) []RecipeStep {
	out := make([]RecipeStep, len(names))
	for i, n := range names {
		out[i].Name = n
	}
	return out
}

func TestMatchStep(t *testing.T) {
	tests := []struct {
		name        string
		steps       []RecipeStep
		hint        string
		wantIdx     int
		wantMatches int
	}{
		{
			name:        "case-insensitive substring",
			steps:       steps("Heating", "Step 2: Sterilization", "Cooling"),
			hint:        "sterilization",
			wantIdx:     1,
			wantMatches: 1,
		},
		{
			name:        "exact name",
			steps:       steps("Heating", "Cooling"),
			hint:        "Cooling",
			wantIdx:     1,
			wantMatches: 1,
		},
		{
			name:        "no match",
			steps:       steps("Heating", "Cooling"),
			hint:        "Fermentation",
			wantIdx:     -1,
			wantMatches: 0,
		},
		{
			name:        "empty hint",
			steps:       steps("Heating"),
			hint:        "",
			wantIdx:     -1,
			wantMatches: 0,
		},
		{
			name:        "whitespace hint",
			steps:       steps("Heating"),
			hint:        "   ",
			wantIdx:     -1,
			wantMatches: 0,
		},
		{
			name:        "shortest name wins among multiple matches",
			steps:       steps("Pre-Heating Stage", "Heating", "Post-Heating Hold"),
			hint:        "heating",
			wantIdx:     1,
			wantMatches: 3,
		},
		{
			name:        "equal length ties break by list order",
			steps:       steps("Wash A", "Wash B"),
			hint:        "wash",
			wantIdx:     0,
			wantMatches: 2,
		},
		{
			name:        "empty step list",
			steps:       nil,
			hint:        "anything",
			wantIdx:     -1,
			wantMatches: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, matches := matchStep(tt.steps, tt.hint)
			if idx != tt.wantIdx {
				t.Errorf("matchStep() index = %d, want %d", idx, tt.wantIdx)
			}
			if matches != tt.wantMatches {
				t.Errorf("matchStep() matches = %d, want %d", matches, tt.wantMatches)
			}
		})
	}
}
