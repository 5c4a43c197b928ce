package sdes

import (
	"fmt"
	"strings"

	"sdes/permutations"
)

type Step struct {
	Label string
	Value permutations.Bits
}

// Trace is the ordered list of intermediate values of one encrypt or decrypt call.
type Trace []Step

// Record appends a step. It is a no-op on a nil *Trace.
func (t *Trace) Record(label string, value permutations.Bits) {
	if t == nil {
		return
	}
	v := make(permutations.Bits, len(value))
	copy(v, value)
	*t = append(*t, Step{Label: label, Value: v})
}

// Lookup returns the value of the first step with the given label.
func (t Trace) Lookup(label string) (permutations.Bits, bool) {
	for _, s := range t {
		if s.Label == label {
			return s.Value, true
		}
	}
	return nil, false
}

func (t Trace) String() string {
	var sb strings.Builder
	for _, s := range t {
		fmt.Fprintf(&sb, "%-16s %s\n", s.Label+":", s.Value)
	}
	return sb.String()
}
