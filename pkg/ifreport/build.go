package ifreport

import (
	"context"

	"github.com/newtron-network/ios2xlsx/pkg/util"
	"golang.org/x/sync/errgroup"
)

// Inputs holds the three reports as lines.
type Inputs struct {
	RunningConfig   []string
	InterfaceStatus []string
	CDPNeighbors    []string
}

// Missing returns the names of reports that have no lines at all.
func (in Inputs) Missing() []string {
	var missing []string
	if len(in.RunningConfig) == 0 {
		missing = append(missing, ReportRunningConfig)
	}
	if len(in.InterfaceStatus) == 0 {
		missing = append(missing, ReportInterfaceStatus)
	}
	if len(in.CDPNeighbors) == 0 {
		missing = append(missing, ReportCDPNeighbors)
	}
	return missing
}

// Options controls parsing and merging.
type Options struct {
	KeyMode    KeyMode
	LenientCDP bool
}

// Result carries the merged rows and the intermediate parse results.
type Result struct {
	Rows      []MergedRow
	Config    *RunningConfig
	Status    map[string]StatusRecord
	Neighbors map[string]NeighborRecord
}

// Build parses all three reports and merges them. The parsers share no
// state and run concurrently; a parse that has not started when ctx is
// cancelled is not run.
func Build(ctx context.Context, in Inputs, opts Options) (*Result, error) {
	normalize := util.NormalizeInterfaceName
	if opts.KeyMode == KeyModeCanonical {
		normalize = util.CanonicalInterfaceName
	}

	res := &Result{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.Config = ParseRunningConfig(in.RunningConfig)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.Status = ParseInterfaceStatusWith(in.InterfaceStatus, normalize)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res.Neighbors = ParseCDPNeighbors(in.CDPNeighbors, NeighborOptions{LenientDelimiter: opts.LenientCDP})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Rows = Merge(res.Config, res.Status, res.Neighbors, opts.KeyMode)
	util.WithFields(map[string]interface{}{
		"interfaces": res.Config.Len(),
		"statuses":   len(res.Status),
		"neighbors":  len(res.Neighbors),
		"key_mode":   opts.KeyMode.String(),
	}).Debug("merged reports")
	return res, nil
}
