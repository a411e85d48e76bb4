package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/eartrain/constants"
	"github.com/jsphweid/eartrain/game"
)

var (
	playSession   string
	playName      string
	playIntervals string
	playPitches   string
	playAscDesc   string
	playNoSave    bool
)

func init() {
	playCmd.Flags().StringVar(&playSession, "session", "", "session name")
	playCmd.Flags().StringVar(&playName, "name", "", "save-file name (defaults to the game name)")
	playCmd.Flags().StringVar(&playIntervals, "intervals", "", "comma-separated interval names, e.g. P4,P5")
	playCmd.Flags().StringVar(&playPitches, "pitches", "", "comma-separated pitch class names, e.g. C,F#,Bb")
	playCmd.Flags().StringVar(&playAscDesc, "asc-desc", "", `direction: "+", "-" or "+-"`)
	playCmd.Flags().BoolVar(&playNoSave, "no-save", false, "don't autosave results")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play [questions]",
	Short: "Play the transposition quiz",
	Long:  `Play the transposition quiz, e.g. "C# + P5 = ?".`,
	Run: func(cmd *cobra.Command, args []string) {
		n := constants.DefaultQuestions
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			n = arg1
		}

		v := game.NewTranspose()
		e := game.NewEngine(v, playName, os.Stdin, os.Stdout)
		v.Configure(settingsOverrides())
		e.Autosave = !playNoSave
		if err := e.Play(n, playSession); err != nil {
			panic("Could not finish session because: " + err.Error())
		}
	},
}

func settingsOverrides() map[string]any {
	overrides := make(map[string]any)
	if playIntervals != "" {
		overrides["intervals"] = strings.Split(playIntervals, ",")
	}
	if playPitches != "" {
		overrides["pitches"] = strings.Split(playPitches, ",")
	}
	if playAscDesc != "" {
		overrides["asc_desc"] = playAscDesc
	}
	return overrides
}
