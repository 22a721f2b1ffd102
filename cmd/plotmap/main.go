package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AliHaider728/royal-palm-map-clone/internal/config"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "plotmap",
	Short: "Royal Palm City plot and property map service",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		name := config.AppName
		if name == "" {
			name = "plotmap-service"
		}
		utils.InitLogger(name)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
