package organize

import (
	"github.com/roach88/jointpanel/internal/ir"
)

// Options configures Organize.
type Options struct {
	Policy ir.NormalizePolicy
}

// Option mutates Options.
type Option func(*Options)

// WithPolicy selects the name normalization policy.
func WithPolicy(p ir.NormalizePolicy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

func buildOptions(opts []Option) Options {
	o := Options{Policy: ir.PolicyPlaceholder}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Organize groups joints into display units.
//
// Every input joint appears in exactly one output group. Groups follow the
// first occurrence of their normalized key in the input; a key holding
// anything other than exactly two joints, or a pair ResolvePair rejects,
// yields one singleton per joint in input order.
func Organize(joints []ir.JointRecord, opts ...Option) []ir.Group {
	o := buildOptions(opts)

	groups := make([]ir.Group, 0, len(joints))
	for _, bucket := range groupByKey(joints, o.Policy) {
		if len(bucket) == 2 {
			if left, right, ok := ResolvePair(bucket[0], bucket[1]); ok {
				groups = append(groups, newGroup(left, right))
				continue
			}
		}
		for _, j := range bucket {
			groups = append(groups, newGroup(j))
		}
	}
	return groups
}

func newGroup(members ...ir.JointRecord) ir.Group {
	return ir.Group{Joints: members, Category: AssignCategory(members)}
}

// BuildLayout organizes a rig and computes the display prefix trim in one pass.
func BuildLayout(rig ir.Rig, opts ...Option) ir.Layout {
	o := buildOptions(opts)

	return ir.Layout{
		Rig:        rig.Name,
		Policy:     o.Policy,
		PrefixTrim: CommonPrefix(rig.Names()),
		Groups:     Organize(rig.Joints, WithPolicy(o.Policy)),
	}
}
