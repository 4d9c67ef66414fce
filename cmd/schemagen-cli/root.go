package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	errorStyle   = color.New(color.FgRed)
	successStyle = color.New(color.FgGreen, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	infoStyle    = color.New(color.FgCyan)
	headerStyle  = color.New(color.Bold)
)

var rootCmd = &cobra.Command{
	Use:           "schemagen-cli",
	Short:         "Generate and inspect JSON Schema documents",
	SilenceUsage:  true,
	SilenceErrors: true,
}
