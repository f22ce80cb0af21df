package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/newtron-network/ios2xlsx/pkg/export"
	"github.com/newtron-network/ios2xlsx/pkg/ifreport"
	"github.com/newtron-network/ios2xlsx/pkg/settings"
	"github.com/newtron-network/ios2xlsx/pkg/util"
)

func parseReportFlags(t *testing.T, args ...string) (*cobra.Command, *reportFlags) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	f := &reportFlags{}
	f.register(cmd, true)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd, f
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestResolve_SettingsDefaults(t *testing.T) {
	cmd, f := parseReportFlags(t, "--run", "r.txt")
	s := &settings.Settings{OutputDir: "/reports", CanonicalKeys: true}

	p, err := f.resolve(cmd, s)
	if err != nil {
		t.Fatalf("resolve() error: %v", err)
	}
	if p.opts.KeyMode != ifreport.KeyModeCanonical {
		t.Errorf("KeyMode = %v, want canonical from settings", p.opts.KeyMode)
	}
	if want := filepath.Join("/reports", export.FileName); p.output != want {
		t.Errorf("output = %q, want %q", p.output, want)
	}
	if p.runFile != "r.txt" {
		t.Errorf("runFile = %q", p.runFile)
	}
}

func TestResolve_Precedence(t *testing.T) {
	dir := t.TempDir()
	jobFile := writeFile(t, dir, "job.yaml", `
running_config: run.txt
interface_status: status.txt
cdp_neighbors: cdp.txt
output: job.xlsx
options:
  canonical_keys: false
  lenient_cdp: true
`)
	s := &settings.Settings{CanonicalKeys: true}

	t.Run("job overrides settings", func(t *testing.T) {
		cmd, f := parseReportFlags(t, "--job", jobFile)
		p, err := f.resolve(cmd, s)
		if err != nil {
			t.Fatalf("resolve() error: %v", err)
		}
		if p.opts.KeyMode != ifreport.KeyModeRaw {
			t.Errorf("KeyMode = %v, want raw from job", p.opts.KeyMode)
		}
		if !p.opts.LenientCDP {
			t.Error("LenientCDP should come from job")
		}
		if want := filepath.Join(dir, "run.txt"); p.runFile != want {
			t.Errorf("runFile = %q, want %q", p.runFile, want)
		}
		if want := filepath.Join(dir, "job.xlsx"); p.output != want {
			t.Errorf("output = %q, want %q", p.output, want)
		}
	})

	t.Run("flags override job", func(t *testing.T) {
		cmd, f := parseReportFlags(t, "--job", jobFile, "--run", "other.txt",
			"--canonical-keys", "--lenient-cdp=false", "-o", "/tmp/x.xlsx")
		p, err := f.resolve(cmd, s)
		if err != nil {
			t.Fatalf("resolve() error: %v", err)
		}
		if p.opts.KeyMode != ifreport.KeyModeCanonical {
			t.Errorf("KeyMode = %v, want canonical from flag", p.opts.KeyMode)
		}
		if p.opts.LenientCDP {
			t.Error("LenientCDP should be turned off by flag")
		}
		if p.runFile != "other.txt" {
			t.Errorf("runFile = %q, want flag value", p.runFile)
		}
		if want := filepath.Join(dir, "status.txt"); p.statusFile != want {
			t.Errorf("statusFile = %q, want job value %q", p.statusFile, want)
		}
		if p.output != "/tmp/x.xlsx" {
			t.Errorf("output = %q", p.output)
		}
	})

	t.Run("bad job", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.yaml", "output: x.xlsx\n")
		cmd, f := parseReportFlags(t, "--job", bad)
		if _, err := f.resolve(cmd, s); !errors.Is(err, util.ErrInvalidJob) {
			t.Errorf("want ErrInvalidJob, got %v", err)
		}
	})
}

func TestReadInputs_Missing(t *testing.T) {
	dir := t.TempDir()
	p := &plan{runFile: writeFile(t, dir, "run.txt", "interface Gi1/0/1\n")}

	_, err := p.readInputs()
	if !errors.Is(err, util.ErrMissingInput) {
		t.Fatalf("want ErrMissingInput, got %v", err)
	}
	for _, name := range []string{ifreport.ReportInterfaceStatus, ifreport.ReportCDPNeighbors} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %s: %v", name, err)
		}
	}
	if strings.Contains(err.Error(), ifreport.ReportRunningConfig) {
		t.Errorf("error should not name the supplied report: %v", err)
	}
}

func TestReadInputs_Unreadable(t *testing.T) {
	dir := t.TempDir()
	p := &plan{
		runFile:    writeFile(t, dir, "run.txt", ""),
		statusFile: filepath.Join(dir, "missing.txt"),
		cdpFile:    writeFile(t, dir, "cdp.txt", ""),
	}

	_, err := p.readInputs()
	if !errors.Is(err, util.ErrReadFailed) {
		t.Fatalf("want ErrReadFailed, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want os.ErrNotExist reachable, got %v", err)
	}
	var ie *util.InputError
	if !errors.As(err, &ie) || ie.Report != ifreport.ReportInterfaceStatus {
		t.Errorf("want InputError for interface-status, got %v", err)
	}
}

func TestReadInputs_Fixtures(t *testing.T) {
	td := filepath.Join("..", "..", "pkg", "ifreport", "testdata")
	p := &plan{
		runFile:    filepath.Join(td, "show_run.txt"),
		statusFile: filepath.Join(td, "show_int_status.txt"),
		cdpFile:    filepath.Join(td, "show_cdp_detail.txt"),
	}

	in, err := p.readInputs()
	if err != nil {
		t.Fatalf("readInputs() error: %v", err)
	}
	if m := in.Missing(); len(m) != 0 {
		t.Errorf("Missing() = %v", m)
	}

	res, err := runReport(context.Background(), in, ifreport.Options{})
	if err != nil {
		t.Fatalf("runReport() error: %v", err)
	}
	if len(res.Rows) != res.Config.Len() {
		t.Errorf("got %d rows for %d interfaces", len(res.Rows), res.Config.Len())
	}
}

func TestOutputFor(t *testing.T) {
	s := &settings.Settings{OutputDir: "/out"}
	if got := outputFor(s, ""); got != filepath.Join("/out", export.FileName) {
		t.Errorf("outputFor(default) = %q", got)
	}
	if got := outputFor(s, "sub/x.xlsx"); got != "sub/x.xlsx" {
		t.Errorf("outputFor(sub/x.xlsx) = %q", got)
	}
}

func TestIsSettingsOrHelp(t *testing.T) {
	if !isSettingsOrHelp(settingsGetCmd) {
		t.Error("settings get should skip settings loading")
	}
	if isSettingsOrHelp(exportCmd) {
		t.Error("export should load settings")
	}
}
