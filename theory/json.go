package theory

import (
	"encoding/json"
	"fmt"
)

// JSON forms tag each value with the key persistence collaborators
// dispatch on: {"iv": name}, {"ic": name}, {"pc": name}, {"nn": number}.

func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"iv": iv.String()})
}

func (iv *Interval) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	v, ok := ParseInterval(m["iv"])
	if !ok {
		return fmt.Errorf("bad interval name %q", m["iv"])
	}
	*iv = v
	return nil
}

func (ic IntervalClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"ic": ic.String()})
}

func (ic *IntervalClass) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	v, ok := ParseIntervalClass(m["ic"])
	if !ok {
		return fmt.Errorf("bad interval class name %q", m["ic"])
	}
	*ic = v
	return nil
}

func (p PitchClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"pc": p.String()})
}

func (p *PitchClass) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	v, ok := ParsePitchClass(m["pc"])
	if !ok {
		return fmt.Errorf("bad pitch class name %q", m["pc"])
	}
	*p = v
	return nil
}

func (nn NoteNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]int{"nn": nn.Value()})
}

func (nn *NoteNumber) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*nn = NewNoteNumber(m["nn"])
	return nil
}

// DecodeTagged reconstructs a theory value from its tagged JSON form,
// dispatching on which tag key is present. Returns ok=false when the
// object carries none of the known tags.
func DecodeTagged(data []byte) (any, bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, false
	}
	switch {
	case probe["ic"] != nil:
		var ic IntervalClass
		if err := json.Unmarshal(data, &ic); err != nil {
			return nil, false
		}
		return ic, true
	case probe["iv"] != nil:
		var iv Interval
		if err := json.Unmarshal(data, &iv); err != nil {
			return nil, false
		}
		return iv, true
	case probe["pc"] != nil:
		var pc PitchClass
		if err := json.Unmarshal(data, &pc); err != nil {
			return nil, false
		}
		return pc, true
	case probe["nn"] != nil:
		var nn NoteNumber
		if err := json.Unmarshal(data, &nn); err != nil {
			return nil, false
		}
		return nn, true
	}
	return nil, false
}
