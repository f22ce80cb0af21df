package ifreport

import (
	"regexp"
	"strings"

	"github.com/newtron-network/ios2xlsx/pkg/util"
)

// cdpPortDelimiter separates the local interface from the remote port on
// the "Interface:" line. IOS prints exactly two spaces before "Port ID".
const cdpPortDelimiter = ",  Port ID (outgoing port):"

var lenientPortDelimiter = regexp.MustCompile(`,\s+Port ID \(outgoing port\):`)

// NeighborOptions tunes ParseCDPNeighbors.
type NeighborOptions struct {
	// LenientDelimiter accepts any run of whitespace before "Port ID"
	// instead of exactly two spaces.
	LenientDelimiter bool
}

// neighborFold is the accumulator threaded through the CDP lines. device is
// the most recent "Device ID:" value and is never reset between entries.
type neighborFold struct {
	device    string
	neighbors map[string]NeighborRecord
	skipped   int
}

// ParseCDPNeighbors parses "show cdp neighbors detail" output into a map
// keyed by the local interface name as printed (not normalized).
func ParseCDPNeighbors(lines []string, opts NeighborOptions) map[string]NeighborRecord {
	acc := neighborFold{neighbors: make(map[string]NeighborRecord)}
	for _, line := range lines {
		acc = stepNeighbor(acc, line, opts)
	}

	log := util.WithReport(ReportCDPNeighbors)
	if acc.skipped > 0 {
		log.Debugf("skipped %d Interface: lines without the Port ID delimiter", acc.skipped)
	}
	log.Debugf("parsed %d neighbors", len(acc.neighbors))
	return acc.neighbors
}

func stepNeighbor(acc neighborFold, line string, opts NeighborOptions) neighborFold {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
	case strings.HasPrefix(line, "Device ID:"):
		_, id, _ := strings.Cut(line, ":")
		acc.device = strings.TrimSpace(id)
	case strings.HasPrefix(line, "Interface:") && strings.Contains(line, "Port ID"):
		left, right, ok := splitPortLine(line, opts)
		if !ok {
			acc.skipped++
			break
		}
		local := strings.TrimSpace(strings.TrimPrefix(left, "Interface:"))
		if acc.device != "" && local != "" {
			acc.neighbors[local] = NeighborRecord{
				Neighbour:          acc.device,
				NeighbourInterface: strings.TrimSpace(right),
			}
		}
	}
	return acc
}

func splitPortLine(line string, opts NeighborOptions) (string, string, bool) {
	if !opts.LenientDelimiter {
		return strings.Cut(line, cdpPortDelimiter)
	}
	loc := lenientPortDelimiter.FindStringIndex(line)
	if loc == nil {
		return "", "", false
	}
	return line[:loc[0]], line[loc[1]:], true
}
