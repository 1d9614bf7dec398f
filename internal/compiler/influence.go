package compiler

import (
	"fmt"
	"strings"

	"github.com/roach88/jointpanel/internal/ir"
)

// ParseInfluenceObjects parses the host tool context's influence-object string:
// whitespace-separated pairs of "<dagPath> <presentation>", where presentation
// is one or more style letters ("r", "t", "rt").
//
// Each DAG path becomes both the joint name and its Ref. Side and type labels
// are left unset; the scene adapter fills them in when it has them.
func ParseInfluenceObjects(s string) ([]ir.JointRecord, error) {
	tokens := strings.Fields(s)
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("influence objects: dangling token %q without presentation", tokens[len(tokens)-1])
	}

	joints := make([]ir.JointRecord, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		path, presentation := tokens[i], tokens[i+1]
		styles, err := parsePresentation(presentation)
		if err != nil {
			return nil, fmt.Errorf("influence objects: %s: %w", path, err)
		}
		joints = append(joints, ir.JointRecord{Name: path, Styles: styles, Ref: path})
	}
	return joints, nil
}

// parsePresentation expands a presentation token into styles, dropping
// repeats. A full style name is accepted as a single style.
func parsePresentation(p string) ([]ir.Style, error) {
	if style, err := ir.ParseStyle(p); err == nil {
		return []ir.Style{style}, nil
	}

	var styles []ir.Style
	seen := make(map[ir.Style]bool)
	for _, r := range p {
		style, err := ir.ParseStyle(string(r))
		if err != nil {
			return nil, err
		}
		if !seen[style] {
			seen[style] = true
			styles = append(styles, style)
		}
	}
	return styles, nil
}
