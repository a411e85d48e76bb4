package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/eartrain/db"
)

var syncPull bool

func init() {
	syncCmd.Flags().BoolVar(&syncPull, "pull", false, "list archived sessions instead of pushing")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync <name>",
	Short: "Archive saved sessions to DynamoDB",
	Long:  `Push a game's finished sessions to the DynamoDB archive, or list what is already archived.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		if syncPull {
			for _, sc := range db.GetScores(name) {
				c, t := sc.Total()
				fmt.Printf("%v: %v/%v\n", sc.Name, c, t)
			}
			return
		}
		scores, err := loadGameScores(name)
		if err != nil {
			panic("Could not read stats file because: " + err.Error())
		}
		pushed := db.PutScores(name, scores)
		fmt.Printf("Pushed %v of %v sessions\n", pushed, len(scores))
	},
}
