// ios2xlsx - Cisco IOS interface report exporter
//
// Reads the text of three IOS show commands, merges them per interface and
// writes a spreadsheet:
//
//	show running-config          -> description, VLANs, IP, port-channel
//	show interfaces status       -> status
//	show cdp neighbors detail    -> neighbour device and port
//
// Examples:
//
//	ios2xlsx export --run run.txt --status status.txt --cdp cdp.txt
//	ios2xlsx export --job sw3.yaml -o sw3.xlsx
//	ios2xlsx show --run run.txt --status status.txt --cdp cdp.txt --json
//	ios2xlsx collect --host 10.1.1.3 --user netops --save-dir raw/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/newtron-network/ios2xlsx/pkg/settings"
	"github.com/newtron-network/ios2xlsx/pkg/util"
	"github.com/newtron-network/ios2xlsx/pkg/version"
)

var (
	verbose bool

	userSettings *settings.Settings
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "ios2xlsx",
	Short:             "Cisco IOS interface report exporter",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `ios2xlsx merges "show running-config", "show interfaces status" and
"show cdp neighbors detail" output into one row per configured interface
and exports the result as a spreadsheet.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set log level: quiet by default, verbose on -v
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		if isSettingsOrHelp(cmd) {
			return nil
		}

		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "report", Title: "Report Operations:"},
		&cobra.Group{ID: "meta", Title: "Configuration & Meta:"},
	)

	for _, cmd := range []*cobra.Command{exportCmd, showCmd, collectCmd} {
		cmd.GroupID = "report"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{settingsCmd, versionCmd} {
		cmd.GroupID = "meta"
		rootCmd.AddCommand(cmd)
	}
}

func isSettingsOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "settings", "help", "version":
			return true
		}
	}
	return false
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if version.Version == "dev" {
			fmt.Println("ios2xlsx dev build (use -ldflags to set version info)")
		} else {
			fmt.Println(version.Info())
		}
	},
}
