package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newtron-network/ios2xlsx/pkg/export"
	"github.com/newtron-network/ios2xlsx/pkg/ifreport"
	"github.com/newtron-network/ios2xlsx/pkg/job"
	"github.com/newtron-network/ios2xlsx/pkg/settings"
	"github.com/newtron-network/ios2xlsx/pkg/textio"
	"github.com/newtron-network/ios2xlsx/pkg/util"
)

// reportFlags are the input selection flags shared by export and show.
type reportFlags struct {
	runFile    string
	statusFile string
	cdpFile    string
	jobFile    string
	output     string
	canonical  bool
	lenientCDP bool
}

func (f *reportFlags) register(cmd *cobra.Command, withOutput bool) {
	cmd.Flags().StringVar(&f.runFile, "run", "", "File with 'show running-config' output")
	cmd.Flags().StringVar(&f.statusFile, "status", "", "File with 'show interfaces status' output")
	cmd.Flags().StringVar(&f.cdpFile, "cdp", "", "File with 'show cdp neighbors detail' output")
	cmd.Flags().StringVar(&f.jobFile, "job", "", "YAML job file naming the inputs")
	registerOptionFlags(cmd, &f.canonical, &f.lenientCDP)
	if withOutput {
		cmd.Flags().StringVarP(&f.output, "output", "o", "", "Spreadsheet to write (default "+export.FileName+")")
	}
}

func registerOptionFlags(cmd *cobra.Command, canonical, lenient *bool) {
	cmd.Flags().BoolVar(canonical, "canonical-keys", false, "Match interfaces by canonical name instead of the running-config spelling")
	cmd.Flags().BoolVar(lenient, "lenient-cdp", false, "Accept any whitespace before 'Port ID' in CDP output")
}

// plan is the fully resolved run: flags over job file over settings.
type plan struct {
	runFile    string
	statusFile string
	cdpFile    string
	output     string
	opts       ifreport.Options
}

func buildOptions(cmd *cobra.Command, s *settings.Settings, j *job.Job, canonical, lenient bool) ifreport.Options {
	c, l := s.CanonicalKeys, s.LenientCDP
	if j != nil {
		if j.Options.CanonicalKeys != nil {
			c = *j.Options.CanonicalKeys
		}
		if j.Options.LenientCDP != nil {
			l = *j.Options.LenientCDP
		}
	}
	if cmd.Flags().Changed("canonical-keys") {
		c = canonical
	}
	if cmd.Flags().Changed("lenient-cdp") {
		l = lenient
	}

	opts := ifreport.Options{LenientCDP: l}
	if c {
		opts.KeyMode = ifreport.KeyModeCanonical
	}
	return opts
}

func (f *reportFlags) resolve(cmd *cobra.Command, s *settings.Settings) (*plan, error) {
	p := &plan{}

	var j *job.Job
	if f.jobFile != "" {
		var err error
		if j, err = job.Load(f.jobFile); err != nil {
			return nil, err
		}
		p.runFile, p.statusFile, p.cdpFile, p.output = j.RunningConfig, j.InterfaceStatus, j.CDPNeighbors, j.Output
	}

	for _, o := range []struct {
		flag string
		dst  *string
	}{
		{f.runFile, &p.runFile},
		{f.statusFile, &p.statusFile},
		{f.cdpFile, &p.cdpFile},
	} {
		if o.flag != "" {
			*o.dst = o.flag
		}
	}

	if f.output != "" || p.output == "" {
		p.output = outputFor(s, f.output)
	}

	p.opts = buildOptions(cmd, s, j, f.canonical, f.lenientCDP)
	return p, nil
}

// readInputs reads the three files. Every unset report is named in the
// returned error.
func (p *plan) readInputs() (ifreport.Inputs, error) {
	var in ifreport.Inputs
	var errs []error

	for _, r := range []struct {
		kind string
		path string
		dst  *[]string
	}{
		{ifreport.ReportRunningConfig, p.runFile, &in.RunningConfig},
		{ifreport.ReportInterfaceStatus, p.statusFile, &in.InterfaceStatus},
		{ifreport.ReportCDPNeighbors, p.cdpFile, &in.CDPNeighbors},
	} {
		if r.path == "" {
			errs = append(errs, util.NewMissingInputError(r.kind))
			continue
		}
		lines, enc, err := textio.ReadFileLines(r.path)
		if err != nil {
			errs = append(errs, util.NewReadError(r.kind, r.path, err))
			continue
		}
		if enc != textio.UTF8 {
			util.WithReport(r.kind).Debugf("%s is not valid UTF-8, decoded as %s", r.path, enc)
		}
		*r.dst = lines
	}

	if len(errs) > 0 {
		return in, errors.Join(errs...)
	}
	return in, nil
}

// runReport builds the merged rows and warns about empty parses, which are
// the only sign of a wrong or truncated input.
func runReport(ctx context.Context, in ifreport.Inputs, opts ifreport.Options) (*ifreport.Result, error) {
	res, err := ifreport.Build(ctx, in, opts)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	if res.Config.Len() == 0 {
		util.WithReport(ifreport.ReportRunningConfig).Warnf("no interfaces found")
	}
	if len(res.Status) == 0 {
		util.WithReport(ifreport.ReportInterfaceStatus).Warnf("no interfaces found")
	}
	if len(res.Neighbors) == 0 {
		util.WithReport(ifreport.ReportCDPNeighbors).Warnf("no neighbors found")
	}
	return res, nil
}
