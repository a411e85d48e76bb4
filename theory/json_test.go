package theory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaggedJSONForms(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(NewInterval(19))
	assert.NoError(err)
	assert.JSONEq(`{"iv":"P12"}`, string(data))

	data, err = json.Marshal(NewIntervalClass(0))
	assert.NoError(err)
	assert.JSONEq(`{"ic":"P8"}`, string(data))

	cs, _ := ParsePitchClass("C#")
	data, err = json.Marshal(cs)
	assert.NoError(err)
	assert.JSONEq(`{"pc":"C#"}`, string(data))

	data, err = json.Marshal(NewNoteNumber(60))
	assert.NoError(err)
	assert.JSONEq(`{"nn":60}`, string(data))
}

func TestTaggedJSONRoundTrip(t *testing.T) {
	assert := assert.New(t)

	var iv Interval
	assert.NoError(json.Unmarshal([]byte(`{"iv":"-M3"}`), &iv))
	assert.Equal(NewInterval(-4), iv)

	var ic IntervalClass
	assert.NoError(json.Unmarshal([]byte(`{"ic":"P8"}`), &ic))
	assert.Equal(NewIntervalClass(0), ic)

	var pc PitchClass
	assert.NoError(json.Unmarshal([]byte(`{"pc":"Bb"}`), &pc))
	assert.Equal(10, pc.Value())
	assert.Equal("Bb", pc.String())

	var nn NoteNumber
	assert.NoError(json.Unmarshal([]byte(`{"nn":200}`), &nn))
	assert.Equal(127, nn.Value())

	assert.Error(json.Unmarshal([]byte(`{"iv":"xx"}`), &iv))
}

func TestDecodeTaggedDispatch(t *testing.T) {
	assert := assert.New(t)

	v, ok := DecodeTagged([]byte(`{"ic":"P5"}`))
	assert.True(ok)
	assert.Equal(NewIntervalClass(7), v)

	v, ok = DecodeTagged([]byte(`{"iv":"P5"}`))
	assert.True(ok)
	assert.Equal(NewInterval(7), v)

	v, ok = DecodeTagged([]byte(`{"nn":69}`))
	assert.True(ok)
	assert.Equal(NewNoteNumber(69), v)

	v, ok = DecodeTagged([]byte(`{"pc":"Es"}`))
	assert.True(ok)
	assert.Equal(5, v.(PitchClass).Value())

	_, ok = DecodeTagged([]byte(`{"other":1}`))
	assert.False(ok)
	_, ok = DecodeTagged([]byte(`"plain"`))
	assert.False(ok)
}
