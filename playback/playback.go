// Package playback renders question cues on a MIDI out port.
package playback

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"gitlab.com/gomidi/midi/v2"

	"github.com/jsphweid/eartrain/theory"
)

type Player struct {
	send func(midi.Message) error
}

// Open connects to the numbered MIDI out port. Callers must
// midi.CloseDriver when done.
func Open(portNo int) (*Player, error) {
	out, err := midi.OutPort(portNo)
	if err != nil {
		return nil, err
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, err
	}
	return &Player{send: send}, nil
}

// triangular samples the triangular distribution on [lo,hi] with the given
// mode.
func triangular(r *rand.Rand, lo, hi, mode float64) float64 {
	u := r.Float64()
	c := (mode - lo) / (hi - lo)
	if u < c {
		return lo + (hi-lo)*math.Sqrt(u*c)
	}
	return hi - (hi-lo)*math.Sqrt((1-u)*(1-c))
}

type timedMsg struct {
	at  time.Duration
	msg midi.Message
}

// PlayCue plays the two notes of a question, simultaneously for harmonic
// questions and in sequence otherwise, with humanized velocity, duration
// and onset.
func (p *Player) PlayCue(r *rand.Rand, n1, n2 theory.NoteNumber, harmonic bool) error {
	v1 := uint8(triangular(r, 60, 120, 90))
	v2 := uint8(triangular(r, 60, 120, 90))
	d1 := time.Duration(triangular(r, 400, 900, 650)) * time.Millisecond
	d2 := time.Duration(triangular(r, -200, 200, 0)) * time.Millisecond

	var offset time.Duration
	if harmonic {
		offset = time.Duration(triangular(r, 0, 70, 0)) * time.Millisecond
		if r.Intn(2) == 0 {
			n1, n2 = n2, n1
			v1, v2 = v2, v1
		}
	} else {
		offset = d1 + time.Duration(triangular(r, -100, 500, 200))*time.Millisecond
	}

	k1, k2 := uint8(n1.Value()), uint8(n2.Value())
	msgs := []timedMsg{
		{0, midi.NoteOn(0, k1, v1)},
		{d1, midi.NoteOff(0, k1)},
		{offset, midi.NoteOn(0, k2, v2)},
		{offset + d1 + d2, midi.NoteOff(0, k2)},
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].at < msgs[j].at
	})

	var elapsed time.Duration
	for _, m := range msgs {
		if m.at > elapsed {
			time.Sleep(m.at - elapsed)
			elapsed = m.at
		}
		if err := p.send(m.msg); err != nil {
			return err
		}
	}
	return nil
}
