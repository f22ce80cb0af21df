package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newtron-network/ios2xlsx/pkg/cli"
	"github.com/newtron-network/ios2xlsx/pkg/export"
)

var (
	exportFlags reportFlags
	showFlags   reportFlags
	jsonOutput  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the merged interface report as a spreadsheet",
	Long: `Parse the three show outputs and write one row per configured interface.

All three reports are required, either as flags or from a job file.
Flags override the job file, which overrides settings.

Examples:
  ios2xlsx export --run run.txt --status status.txt --cdp cdp.txt
  ios2xlsx export --job sw3.yaml --canonical-keys
  ios2xlsx export --run r.txt --status s.txt --cdp c.txt -o /tmp/sw3.xlsx`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := exportFlags.resolve(cmd, userSettings)
		if err != nil {
			return err
		}
		in, err := p.readInputs()
		if err != nil {
			return err
		}
		res, err := runReport(cmd.Context(), in, p.opts)
		if err != nil {
			return err
		}
		if err := export.SaveXLSX(p.output, res.Rows); err != nil {
			return fmt.Errorf("writing %s: %w", p.output, err)
		}
		fmt.Printf("%s %d interfaces to %s\n", cli.Green("Wrote"), len(res.Rows), p.output)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the merged interface report",
	Long: `Parse the three show outputs and print the merged rows as a table,
or as JSON with --json.

Examples:
  ios2xlsx show --run run.txt --status status.txt --cdp cdp.txt
  ios2xlsx show --job sw3.yaml --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := showFlags.resolve(cmd, userSettings)
		if err != nil {
			return err
		}
		in, err := p.readInputs()
		if err != nil {
			return err
		}
		res, err := runReport(cmd.Context(), in, p.opts)
		if err != nil {
			return err
		}

		if jsonOutput {
			return export.WriteJSON(os.Stdout, res.Rows)
		}
		if len(res.Rows) == 0 {
			fmt.Println(cli.Yellow("No interfaces found."))
			return nil
		}
		if err := export.WriteTable(os.Stdout, res.Rows); err != nil {
			return err
		}
		fmt.Printf("\n%s interfaces (key mode: %s)\n", cli.Bold(fmt.Sprint(len(res.Rows))), p.opts.KeyMode)
		return nil
	},
}

func init() {
	exportFlags.register(exportCmd, true)
	showFlags.register(showCmd, false)
	showCmd.Flags().BoolVar(&jsonOutput, "json", false, "JSON output")
}
