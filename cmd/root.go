package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swiftguard",
	Short: "SwiftGuard - HIG & architecture linter for Swift UI code",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
