package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/eartrain/constants"
	"github.com/jsphweid/eartrain/game"
	"github.com/jsphweid/eartrain/playback"
	"github.com/jsphweid/eartrain/theory"
)

var (
	listenInPort  int
	listenOutPort int
)

func init() {
	listenCmd.Flags().IntVar(&listenInPort, "in-port", 0, "MIDI in port number")
	listenCmd.Flags().IntVar(&listenOutPort, "out-port", constants.GetMidiPort(), "MIDI out port number")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen [questions]",
	Short: "Interval quiz answered on a MIDI keyboard",
	Long:  `Interval recognition quiz where answers are played on a MIDI keyboard instead of typed.`,
	Run: func(cmd *cobra.Command, args []string) {
		n := constants.DefaultQuestions
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			n = arg1
		}
		listen(n)
	},
}

// listen feeds MIDI-keyboard answers into the engine's input stream: the
// notes played since the last answer settle for a debounce window, then
// the interval between the first and last of them is submitted as if it
// had been typed.
func listen(n int) {
	defer midi.CloseDriver()

	player, err := playback.Open(listenOutPort)
	if err != nil {
		panic("Could not open MIDI out port because: " + err.Error())
	}
	in, err := midi.InPort(listenInPort)
	if err != nil {
		panic("Could not open MIDI in port because: " + err.Error())
	}

	pr, pw := io.Pipe()

	var mu sync.Mutex
	var played []uint8
	settle := debounce.New(400 * time.Millisecond)
	submit := func() {
		mu.Lock()
		defer mu.Unlock()
		if len(played) < 2 {
			return
		}
		first, last := int(played[0]), int(played[len(played)-1])
		played = played[:0]
		d := last - first
		if d < 0 {
			d = -d
		}
		// Intervals are always answered by their ascending name.
		fmt.Fprintln(pw, theory.NewInterval(d).String())
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		if msg.GetNoteStart(&ch, &key, &vel) {
			mu.Lock()
			played = append(played, key)
			mu.Unlock()
			settle(submit)
		}
	})
	if err != nil {
		panic("Could not listen to MIDI in port because: " + err.Error())
	}
	defer stop()

	v := game.NewIntervals(player)
	e := game.NewEngine(v, "", pr, os.Stdout)
	if err := e.Play(n, ""); err != nil {
		panic("Could not finish session because: " + err.Error())
	}
}
