package util

import "strings"

// interfacePrefixes maps IOS abbreviations to their long form. Order matters:
// NormalizeInterfaceName stops at the first prefix that matches.
var interfacePrefixes = []struct {
	short string
	long  string
}{
	{"Eth", "Ethernet"},
	{"Gi", "GigabitEthernet"},
	{"Te", "TenGigabitEthernet"},
	{"Po", "Port-channel"},
}

// NormalizeInterfaceName expands an abbreviated IOS interface name.
// Gi1/0/1 -> GigabitEthernet1/0/1, Po10 -> Port-channel10.
// Only the first matching prefix is replaced; unknown names and "" are
// returned unchanged. Already-long names are not special-cased, so
// GigabitEthernet1/0/1 is expanded again. Use CanonicalInterfaceName when
// the input may already be in long form.
func NormalizeInterfaceName(name string) string {
	if name == "" {
		return name
	}
	for _, p := range interfacePrefixes {
		if strings.HasPrefix(name, p.short) {
			return p.long + name[len(p.short):]
		}
	}
	return name
}

// CanonicalInterfaceName is the idempotent form of NormalizeInterfaceName:
// names that already start with a long form are returned unchanged.
func CanonicalInterfaceName(name string) string {
	for _, p := range interfacePrefixes {
		if strings.HasPrefix(name, p.long) {
			return name
		}
	}
	return NormalizeInterfaceName(name)
}
