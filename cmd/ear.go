package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/eartrain/constants"
	"github.com/jsphweid/eartrain/game"
	"github.com/jsphweid/eartrain/playback"
)

var (
	earSession   string
	earName      string
	earIntervals string
	earCenter    string
	earSpread    int
	earADH       string
	earPort      int
	earNoSave    bool
)

func init() {
	earCmd.Flags().StringVar(&earSession, "session", "", "session name")
	earCmd.Flags().StringVar(&earName, "name", "", "save-file name (defaults to the game name)")
	earCmd.Flags().StringVar(&earIntervals, "intervals", "", "comma-separated interval names, e.g. m3,M3")
	earCmd.Flags().StringVar(&earCenter, "center", "", "center note, e.g. A4")
	earCmd.Flags().IntVar(&earSpread, "spread", -1, "max semitone distance from the center")
	earCmd.Flags().StringVar(&earADH, "adh", "", `modes: any combination of "a", "d", "h"`)
	earCmd.Flags().IntVar(&earPort, "port", constants.GetMidiPort(), "MIDI out port number")
	earCmd.Flags().BoolVar(&earNoSave, "no-save", false, "don't autosave results")
	rootCmd.AddCommand(earCmd)
}

var earCmd = &cobra.Command{
	Use:   "ear [questions]",
	Short: "Play the interval recognition quiz",
	Long:  `Play the interval recognition quiz: two notes sound on the MIDI out port, answer with an interval name.`,
	Run: func(cmd *cobra.Command, args []string) {
		n := constants.DefaultQuestions
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			n = arg1
		}

		defer midi.CloseDriver()
		player, err := playback.Open(earPort)
		if err != nil {
			panic("Could not open MIDI out port because: " + err.Error())
		}

		v := game.NewIntervals(player)
		e := game.NewEngine(v, earName, os.Stdin, os.Stdout)
		v.Configure(earOverrides())
		e.Autosave = !earNoSave
		if err := e.Play(n, earSession); err != nil {
			panic("Could not finish session because: " + err.Error())
		}
	},
}

func earOverrides() map[string]any {
	overrides := make(map[string]any)
	if earIntervals != "" {
		overrides["intervals"] = strings.Split(earIntervals, ",")
	}
	if earCenter != "" {
		overrides["center"] = earCenter
	}
	if earSpread >= 0 {
		overrides["spread"] = earSpread
	}
	if earADH != "" {
		overrides["adh"] = earADH
	}
	return overrides
}
