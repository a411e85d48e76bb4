package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eartrain",
	Short: "Interval and pitch class quiz games",
	Long:  `Quiz games for practicing transposition and interval recognition.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
