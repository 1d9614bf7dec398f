package harness

import (
	"context"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/roach88/jointpanel/internal/ir"
	"github.com/roach88/jointpanel/internal/organize"
	"github.com/roach88/jointpanel/internal/store"
	"github.com/roach88/jointpanel/internal/testutil"
)

// Harness runs scenarios against a store.
type Harness struct {
	store  *store.Store
	logger *zap.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
//
// Execution flow:
// 1. Create fresh in-memory database
// 2. Organize the scenario's joints into a layout
// 3. Record the build and read the layout back
// 4. Evaluate assertions against the stored layout
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario, zap.NewNop())
}

// RunContext is Run with an explicit context and logger.
func RunContext(ctx context.Context, scenario *Scenario, logger *zap.Logger) (*Result, error) {
	ids := testutil.NewCountingIDGenerator("build")
	st, err := store.Open(":memory:", store.WithIDGenerator(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{store: st, logger: logger}
	return h.run(ctx, scenario)
}

func (h *Harness) run(ctx context.Context, scenario *Scenario) (*Result, error) {
	rig, err := scenario.ToRig()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	policy, err := ir.ParsePolicy(scenario.Policy)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	layout := organize.BuildLayout(rig, organize.WithPolicy(policy))
	build, err := h.store.RecordBuild(ctx, layout)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: record build: %w", scenario.Name, err)
	}
	stored, err := h.store.ReadLayout(ctx, build.LayoutHash)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: read layout: %w", scenario.Name, err)
	}
	h.logger.Debug("scenario organized",
		zap.String("scenario", scenario.Name),
		zap.Int("joints", len(rig.Joints)),
		zap.Int("groups", len(stored.Groups)),
		zap.String("layout_hash", build.LayoutHash))

	result := NewResult()
	result.Layout = stored
	result.Build = build

	// The stored copy drops host handles; everything else must survive.
	if !reflect.DeepEqual(withoutRefs(layout), stored) {
		result.AddError("stored layout differs from organizer output")
	}

	for i, a := range scenario.Assertions {
		if err := evaluate(stored, a); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}
	return result, nil
}

func withoutRefs(l ir.Layout) ir.Layout {
	groups := make([]ir.Group, len(l.Groups))
	for i, g := range l.Groups {
		joints := make([]ir.JointRecord, len(g.Joints))
		for k, j := range g.Joints {
			j.Ref = nil
			if len(j.Styles) == 0 {
				j.Styles = nil
			}
			joints[k] = j
		}
		groups[i] = ir.Group{Joints: joints, Category: g.Category}
	}
	l.Groups = groups
	return l
}
