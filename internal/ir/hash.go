package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainLayout prefixes layout hashes. The version suffix leaves room for
// migrating the hashed representation.
const DomainLayout = "jointpanel/layout/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// MarshalLayout returns the canonical JSON form of l.
// Unset labels and empty style lists are omitted, matching the struct's
// omitempty tags so the bytes decode back with encoding/json.
func MarshalLayout(l Layout) ([]byte, error) {
	groups := make([]any, len(l.Groups))
	for i, g := range l.Groups {
		joints := make([]any, len(g.Joints))
		for k, j := range g.Joints {
			joints[k] = jointCanonicalMap(j)
		}
		groups[i] = map[string]any{
			"category": g.Category.String(),
			"joints":   joints,
		}
	}

	data, err := MarshalCanonical(map[string]any{
		"rig":         l.Rig,
		"policy":      string(l.Policy),
		"prefix_trim": l.PrefixTrim,
		"groups":      groups,
	})
	if err != nil {
		return nil, fmt.Errorf("MarshalLayout: %w", err)
	}
	return data, nil
}

func jointCanonicalMap(j JointRecord) map[string]any {
	m := map[string]any{"name": j.Name}
	if j.Side != SideUnset {
		m["side"] = j.Side.String()
	}
	if j.Type != TypeUnset {
		m["type"] = j.Type.String()
	}
	if len(j.Styles) > 0 {
		styles := make([]string, len(j.Styles))
		for i, s := range j.Styles {
			styles[i] = string(s)
		}
		m["styles"] = styles
	}
	return m
}

// LayoutHash computes the content-addressed identity of a layout.
// Identical organizer output always hashes identically.
func LayoutHash(l Layout) (string, error) {
	data, err := MarshalLayout(l)
	if err != nil {
		return "", fmt.Errorf("LayoutHash: %w", err)
	}
	return hashWithDomain(DomainLayout, data), nil
}

// MustLayoutHash is like LayoutHash but panics on error.
// Use only in tests or when the layout is known to be valid.
func MustLayoutHash(l Layout) string {
	h, err := LayoutHash(l)
	if err != nil {
		panic(err)
	}
	return h
}
