// Package ifreport parses Cisco IOS "show" command output and merges it into
// one row per interface.
//
// Three reports are understood:
//
//	show running-config          -> ParseRunningConfig
//	show interfaces status       -> ParseInterfaceStatus
//	show cdp neighbors detail    -> ParseCDPNeighbors
//
// Parsers never fail. Lines they do not recognize are skipped, so a report of
// the wrong kind produces an empty result rather than an error.
package ifreport

// Report names, used in logs and error messages.
const (
	ReportRunningConfig   = "running-config"
	ReportInterfaceStatus = "interface-status"
	ReportCDPNeighbors    = "cdp-neighbors"
)

// Columns is the output column order shared by every renderer.
var Columns = []string{
	"Interface",
	"Description",
	"Status",
	"VLANs",
	"IP Address",
	"Port Channel",
	"Neighbour",
	"Neighbour Interface",
}

// RunningConfigRecord holds the attributes of one "interface" block.
type RunningConfigRecord struct {
	Description string `json:"Description"`
	VLANs       string `json:"VLANs"`        // access VLAN or trunk allowed list, last seen wins
	IPAddress   string `json:"IP Address"`   // raw "<addr> <mask>"
	PortChannel string `json:"Port Channel"` // "Port-channel<N>"
	Shutdown    string `json:"Shutdown,omitempty"`
}

// RunningConfig maps raw interface names (as written after "interface") to
// their records. Names preserves first-seen order.
type RunningConfig struct {
	Names      []string
	Interfaces map[string]*RunningConfigRecord
}

// NewRunningConfig returns an empty RunningConfig.
func NewRunningConfig() *RunningConfig {
	return &RunningConfig{Interfaces: make(map[string]*RunningConfigRecord)}
}

// Len returns the number of distinct interfaces.
func (c *RunningConfig) Len() int {
	return len(c.Names)
}

// Get returns a copy of the record for name.
func (c *RunningConfig) Get(name string) (RunningConfigRecord, bool) {
	r, ok := c.Interfaces[name]
	if !ok {
		return RunningConfigRecord{}, false
	}
	return *r, true
}

// StatusRecord is one row of "show interfaces status".
type StatusRecord struct {
	Status string `json:"Status"`
}

// NeighborRecord is one CDP neighbor seen on a local interface.
type NeighborRecord struct {
	Neighbour          string `json:"Neighbour"`
	NeighbourInterface string `json:"Neighbour Interface"` // remote port, not normalized
}

// MergedRow is one output row.
type MergedRow struct {
	Interface          string `json:"Interface"`
	Description        string `json:"Description"`
	Status             string `json:"Status"`
	VLANs              string `json:"VLANs"`
	IPAddress          string `json:"IP Address"`
	PortChannel        string `json:"Port Channel"`
	Neighbour          string `json:"Neighbour"`
	NeighbourInterface string `json:"Neighbour Interface"`
}

// Values returns the row's cells in Columns order.
func (r MergedRow) Values() []string {
	return []string{
		r.Interface,
		r.Description,
		r.Status,
		r.VLANs,
		r.IPAddress,
		r.PortChannel,
		r.Neighbour,
		r.NeighbourInterface,
	}
}
