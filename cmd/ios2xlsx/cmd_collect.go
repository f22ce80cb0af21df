package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/newtron-network/ios2xlsx/pkg/cli"
	"github.com/newtron-network/ios2xlsx/pkg/collect"
	"github.com/newtron-network/ios2xlsx/pkg/export"
	"github.com/newtron-network/ios2xlsx/pkg/settings"
)

// passwordEnv supplies the SSH password without a prompt.
const passwordEnv = "IOS2XLSX_PASSWORD"

var (
	collectHost       string
	collectUser       string
	collectPort       int
	collectSaveDir    string
	collectOutput     string
	collectTimeout    time.Duration
	collectKnownHosts string
	collectCanonical  bool
	collectLenient    bool
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch the show outputs over SSH and export them",
	Long: `Connect to a switch over SSH, run the three show commands and write
the merged spreadsheet.

The password is read from ` + passwordEnv + ` or prompted for.

Examples:
  ios2xlsx collect --host 10.1.1.3 --user netops
  ios2xlsx collect --host sw3 --save-dir raw/ -o sw3.xlsx
  ios2xlsx collect --host sw3 --known-hosts ~/.ssh/known_hosts`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user := collectUser
		if user == "" {
			user = userSettings.SSHUser
		}
		if user == "" {
			return fmt.Errorf("user required: use --user or 'ios2xlsx settings set ssh_user <name>'")
		}
		port := collectPort
		if port == 0 {
			port = userSettings.GetSSHPort()
		}

		pass, err := readPassword(user, collectHost)
		if err != nil {
			return err
		}

		c := collect.New(collect.Config{
			Host:           collectHost,
			Port:           port,
			User:           user,
			Password:       pass,
			Timeout:        collectTimeout,
			KnownHostsFile: collectKnownHosts,
		})
		reports, err := c.Collect(cmd.Context())
		if err != nil {
			return err
		}

		if collectSaveDir != "" {
			paths, err := reports.Save(collectSaveDir, collectHost)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Printf("Saved %s\n", p)
			}
		}

		opts := buildOptions(cmd, userSettings, nil, collectCanonical, collectLenient)
		res, err := runReport(cmd.Context(), reports.Inputs(), opts)
		if err != nil {
			return err
		}

		output := outputFor(userSettings, collectOutput)
		if err := export.SaveXLSX(output, res.Rows); err != nil {
			return fmt.Errorf("writing %s: %w", output, err)
		}
		fmt.Printf("%s %d interfaces from %s to %s\n", cli.Green("Wrote"), len(res.Rows), collectHost, output)
		return nil
	},
}

func outputFor(s *settings.Settings, flag string) string {
	if flag == "" {
		flag = export.FileName
	}
	return s.OutputPath(flag)
}

func readPassword(user, host string) (string, error) {
	if pass, ok := os.LookupEnv(passwordEnv); ok {
		return pass, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no password: set %s or run from a terminal", passwordEnv)
	}
	fmt.Fprintf(os.Stderr, "Password for %s@%s: ", user, host)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(b), nil
}

func init() {
	collectCmd.Flags().StringVar(&collectHost, "host", "", "Switch hostname or address")
	collectCmd.Flags().StringVarP(&collectUser, "user", "u", "", "SSH user (default from settings)")
	collectCmd.Flags().IntVarP(&collectPort, "port", "p", 0, "SSH port (default from settings, else 22)")
	collectCmd.Flags().StringVar(&collectSaveDir, "save-dir", "", "Also save the raw show outputs here")
	collectCmd.Flags().StringVarP(&collectOutput, "output", "o", "", "Spreadsheet to write (default "+export.FileName+")")
	collectCmd.Flags().DurationVar(&collectTimeout, "timeout", collect.DefaultTimeout, "SSH connect timeout")
	collectCmd.Flags().StringVar(&collectKnownHosts, "known-hosts", "", "known_hosts file for host key checking")
	registerOptionFlags(collectCmd, &collectCanonical, &collectLenient)
	collectCmd.MarkFlagRequired("host")
}
