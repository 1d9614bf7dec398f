package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/jointpanel/internal/ir"
)

// RunWithGolden executes a scenario and compares the stored layout against
// a golden file at testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the result so callers can also check assertions.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result.Layout); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares the canonical JSON of layout against the golden
// file for name.
func AssertGolden(t *testing.T, name string, layout ir.Layout) error {
	t.Helper()

	data, err := ir.MarshalLayout(layout)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
