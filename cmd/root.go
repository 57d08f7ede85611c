package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tasktracker",
	Short: "Task Tracker - a REST API for managing projects and assignments",
	Long:  `Task Tracker serves a JSON HTTP API for managing projects and the assignments attached to them.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(ServeCmd())
}
