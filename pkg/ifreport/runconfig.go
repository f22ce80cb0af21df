package ifreport

import (
	"strings"

	"github.com/newtron-network/ios2xlsx/pkg/util"
)

// DirectiveKind identifies what a running-config line sets.
type DirectiveKind int

const (
	DirectiveNone DirectiveKind = iota
	DirectiveInterface
	DirectiveDescription
	DirectiveShutdown
	DirectiveIPAddress
	DirectiveAccessVLAN
	DirectiveTrunkVLAN
	DirectiveChannelGroup
)

var directiveNames = map[DirectiveKind]string{
	DirectiveNone:         "none",
	DirectiveInterface:    "interface",
	DirectiveDescription:  "description",
	DirectiveShutdown:     "shutdown",
	DirectiveIPAddress:    "ip-address",
	DirectiveAccessVLAN:   "access-vlan",
	DirectiveTrunkVLAN:    "trunk-vlan",
	DirectiveChannelGroup: "channel-group",
}

func (k DirectiveKind) String() string {
	if s, ok := directiveNames[k]; ok {
		return s
	}
	return "unknown"
}

// Directive is a classified running-config line. Value carries the
// extracted argument (interface name, description text, VLAN token, ...).
type Directive struct {
	Kind  DirectiveKind
	Value string
}

type directiveMatcher struct {
	kind  DirectiveKind
	match func(line string) (string, bool)
}

// configMatchers are tried in order; the first match wins.
var configMatchers = []directiveMatcher{
	{DirectiveInterface, func(line string) (string, bool) {
		if !strings.HasPrefix(line, "interface") {
			return "", false
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return "", false
		}
		return f[1], true
	}},
	{DirectiveDescription, func(line string) (string, bool) {
		if !strings.HasPrefix(line, "description") {
			return "", false
		}
		return strings.TrimSpace(strings.TrimPrefix(line, "description")), true
	}},
	{DirectiveShutdown, func(line string) (string, bool) {
		return "down", line == "shutdown"
	}},
	{DirectiveIPAddress, func(line string) (string, bool) {
		if !strings.HasPrefix(line, "ip address") {
			return "", false
		}
		return util.FieldsFrom(line, 2), true
	}},
	{DirectiveAccessVLAN, func(line string) (string, bool) {
		if !strings.Contains(line, "switchport access vlan") {
			return "", false
		}
		return util.LastField(line), true
	}},
	{DirectiveTrunkVLAN, func(line string) (string, bool) {
		if !strings.Contains(line, "switchport trunk allowed vlan") {
			return "", false
		}
		return util.LastField(line), true
	}},
	{DirectiveChannelGroup, func(line string) (string, bool) {
		if !strings.HasPrefix(line, "channel-group") {
			return "", false
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return "", false
		}
		return "Port-channel" + f[1], true
	}},
}

// ClassifyConfigLine trims line and returns the directive it carries.
func ClassifyConfigLine(line string) Directive {
	line = strings.TrimSpace(line)
	for _, m := range configMatchers {
		if v, ok := m.match(line); ok {
			return Directive{Kind: m.kind, Value: v}
		}
	}
	return Directive{Kind: DirectiveNone}
}

// ParseRunningConfig extracts per-interface attributes from
// "show running-config" output. Keys are interface names exactly as written
// in the config. A repeated "interface X" line resets X but keeps its
// position in Names.
func ParseRunningConfig(lines []string) *RunningConfig {
	cfg := NewRunningConfig()
	current := ""

	for _, line := range lines {
		d := ClassifyConfigLine(line)
		if d.Kind == DirectiveInterface {
			current = d.Value
			if _, seen := cfg.Interfaces[current]; !seen {
				cfg.Names = append(cfg.Names, current)
			}
			cfg.Interfaces[current] = &RunningConfigRecord{}
			continue
		}
		if current == "" {
			continue
		}
		cfg.Interfaces[current].apply(d)
	}

	util.WithReport(ReportRunningConfig).Debugf("parsed %d interfaces from %d lines", cfg.Len(), len(lines))
	return cfg
}

func (r *RunningConfigRecord) apply(d Directive) {
	switch d.Kind {
	case DirectiveDescription:
		r.Description = d.Value
	case DirectiveShutdown:
		r.Shutdown = d.Value
	case DirectiveIPAddress:
		r.IPAddress = d.Value
	case DirectiveAccessVLAN, DirectiveTrunkVLAN:
		r.VLANs = d.Value
	case DirectiveChannelGroup:
		r.PortChannel = d.Value
	}
}
