package score

import (
	"encoding/json"
	"time"

	"github.com/jsphweid/eartrain/theory"
)

type scoreJSON struct {
	Name     string         `json:"score"`
	Start    *time.Time     `json:"start"`
	End      *time.Time     `json:"end"`
	Settings map[string]any `json:"settings"`
	Data     [][2]any       `json:"data"`
}

func (s *Score) MarshalJSON() ([]byte, error) {
	out := scoreJSON{
		Name:     s.Name,
		Start:    s.Start,
		End:      s.End,
		Settings: s.Settings,
		Data:     make([][2]any, 0, len(s.order)),
	}
	for _, ks := range s.order {
		e := s.data[ks]
		out.Data = append(out.Data, [2]any{e.key, []int{e.tally.Correct, e.tally.Total}})
	}
	return json.Marshal(out)
}

func (s *Score) UnmarshalJSON(data []byte) error {
	var in struct {
		Name     string                     `json:"score"`
		Start    *time.Time                 `json:"start"`
		End      *time.Time                 `json:"end"`
		Settings map[string]json.RawMessage `json:"settings"`
		Data     [][2]json.RawMessage       `json:"data"`
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.Name = in.Name
	s.Start = in.Start
	s.End = in.End
	s.Settings = make(map[string]any, len(in.Settings))
	for k, raw := range in.Settings {
		s.Settings[k] = decodeAny(raw)
	}
	s.data = make(map[string]*entry)
	s.order = nil
	for _, row := range in.Data {
		var rawKey []json.RawMessage
		if err := json.Unmarshal(row[0], &rawKey); err != nil {
			return err
		}
		key := make([]any, len(rawKey))
		for i, rk := range rawKey {
			key[i] = decodeAny(rk)
		}
		var pair [2]int
		if err := json.Unmarshal(row[1], &pair); err != nil {
			return err
		}
		ks := keyString(key)
		s.data[ks] = &entry{key: key, tally: Tally{pair[0], pair[1]}}
		s.order = append(s.order, ks)
	}
	return nil
}

// decodeAny rebuilds a stored value: tagged objects become theory values,
// arrays recurse, everything else stays a plain JSON value.
func decodeAny(raw json.RawMessage) any {
	if v, ok := theory.DecodeTagged(raw); ok {
		return v
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		res := make([]any, len(arr))
		for i, a := range arr {
			res[i] = decodeAny(a)
		}
		return res
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
