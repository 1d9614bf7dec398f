package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/jointpanel/internal/ir"
)

// Scenario defines one organizer scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Rig names the rig in the layout. Defaults to Name.
	Rig string `yaml:"rig,omitempty"`

	// Policy is the normalization policy. Defaults to placeholder.
	Policy string `yaml:"policy,omitempty"`

	// Joints lists the rig's joints in scene order.
	Joints []JointStep `yaml:"joints"`

	// Assertions validate the stored layout.
	Assertions []Assertion `yaml:"assertions"`
}

// JointStep describes one joint. Labels use the names accepted by
// ir.ParseSide, ir.ParseJointType and ir.ParseStyle.
type JointStep struct {
	Name   string   `yaml:"name"`
	Side   string   `yaml:"side,omitempty"`
	Type   string   `yaml:"type,omitempty"`
	Styles []string `yaml:"styles,omitempty"`
}

// Assertion validates the layout.
type Assertion struct {
	// Type specifies the assertion type:
	// - "group_count": layout has exactly Count groups
	// - "paired": Joints form one group, left then right
	// - "singleton": Joint is alone in its group
	// - "category": Joint's group has Category
	// - "prefix_trim": layout prefix trim equals Count
	Type string `yaml:"type"`

	Joint    string   `yaml:"joint,omitempty"`
	Joints   []string `yaml:"joints,omitempty"`
	Category string   `yaml:"category,omitempty"`
	Count    int      `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertGroupCount = "group_count"
	AssertPaired     = "paired"
	AssertSingleton  = "singleton"
	AssertCategory   = "category"
	AssertPrefixTrim = "prefix_trim"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field checking.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if _, err := ir.ParsePolicy(s.Policy); err != nil {
		return err
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, j := range s.Joints {
		if _, err := j.record(); err != nil {
			return fmt.Errorf("joints[%d]: %w", i, err)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertGroupCount, AssertPrefixTrim:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertPaired:
		if len(a.Joints) != 2 {
			return fmt.Errorf("assertions[%d]: paired needs exactly two joints", index)
		}
	case AssertSingleton:
		if a.Joint == "" {
			return fmt.Errorf("assertions[%d]: joint is required for singleton", index)
		}
	case AssertCategory:
		if a.Joint == "" {
			return fmt.Errorf("assertions[%d]: joint is required for category", index)
		}
		if _, err := ir.ParseCategory(a.Category); err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

func (j JointStep) record() (ir.JointRecord, error) {
	if j.Name == "" {
		return ir.JointRecord{}, fmt.Errorf("name is required")
	}
	side, err := ir.ParseSide(j.Side)
	if err != nil {
		return ir.JointRecord{}, err
	}
	jt, err := ir.ParseJointType(j.Type)
	if err != nil {
		return ir.JointRecord{}, err
	}

	rec := ir.JointRecord{Name: j.Name, Side: side, Type: jt}
	for _, tag := range j.Styles {
		st, err := ir.ParseStyle(tag)
		if err != nil {
			return ir.JointRecord{}, err
		}
		rec.Styles = append(rec.Styles, st)
	}
	return rec, nil
}

// ToRig converts the scenario's joints into an ir.Rig.
func (s *Scenario) ToRig() (ir.Rig, error) {
	name := s.Rig
	if name == "" {
		name = s.Name
	}
	rig := ir.Rig{Name: name}
	for i, j := range s.Joints {
		rec, err := j.record()
		if err != nil {
			return ir.Rig{}, fmt.Errorf("joints[%d]: %w", i, err)
		}
		rig.Joints = append(rig.Joints, rec)
	}
	return rig, nil
}
