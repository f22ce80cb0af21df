package ifreport

import (
	"fmt"

	"github.com/newtron-network/ios2xlsx/pkg/util"
)

// KeyMode selects how running-config names are matched against the status
// and neighbor maps.
type KeyMode int

const (
	// KeyModeRaw looks up status and neighbors by the running-config name
	// exactly as written. Status keys are normalized by the status parser, so
	// a running config that uses abbreviated names finds no status.
	KeyModeRaw KeyMode = iota
	// KeyModeCanonical passes every key through util.CanonicalInterfaceName
	// before matching.
	KeyModeCanonical
)

func (m KeyMode) String() string {
	switch m {
	case KeyModeRaw:
		return "raw"
	case KeyModeCanonical:
		return "canonical"
	default:
		return fmt.Sprintf("KeyMode(%d)", int(m))
	}
}

// ParseKeyMode converts "raw" or "canonical" to a KeyMode. "" is raw.
func ParseKeyMode(s string) (KeyMode, error) {
	switch s {
	case "", "raw":
		return KeyModeRaw, nil
	case "canonical":
		return KeyModeCanonical, nil
	default:
		return KeyModeRaw, fmt.Errorf("unknown key mode %q (valid: raw, canonical)", s)
	}
}

// Merge joins the three parse results into one row per running-config
// interface, in running-config order. Fields with no matching data are "".
func Merge(cfg *RunningConfig, status map[string]StatusRecord, neighbors map[string]NeighborRecord, mode KeyMode) []MergedRow {
	key := func(s string) string { return s }
	if mode == KeyModeCanonical {
		key = util.CanonicalInterfaceName
		status = rekey(status, key)
		neighbors = rekey(neighbors, key)
	}

	rows := make([]MergedRow, 0, cfg.Len())
	for _, name := range cfg.Names {
		rec := cfg.Interfaces[name]
		st := status[key(name)]
		nb := neighbors[key(name)]
		rows = append(rows, MergedRow{
			Interface:          name,
			Description:        rec.Description,
			Status:             st.Status,
			VLANs:              rec.VLANs,
			IPAddress:          rec.IPAddress,
			PortChannel:        rec.PortChannel,
			Neighbour:          nb.Neighbour,
			NeighbourInterface: nb.NeighbourInterface,
		})
	}
	return rows
}

func rekey[V any](m map[string]V, key func(string) string) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[key(k)] = v
	}
	return out
}
