// Package netstatus finds the address under which the rescue system is
// reachable, so the displays can show a usable URL.
package netstatus

import (
	"fmt"
	"net"
	"strings"
)

// Family is the address family of a lookup result.
type Family int

const (
	FamilyNone Family = iota
	FamilyIPv4
	FamilyIPv6
)

// Lookup returns the host to display: the reverse name (or literal address)
// of the first usable interface address. IPv4 is preferred over IPv6;
// link-local IPv6 addresses are never shown.
func Lookup() (string, Family) {
	if host, ok := lookupFamily(FamilyIPv4); ok {
		return host, FamilyIPv4
	}
	if host, ok := lookupFamily(FamilyIPv6); ok {
		return host, FamilyIPv6
	}
	return "", FamilyNone
}

func lookupFamily(fam Family) (string, bool) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", false
	}
	for _, ifi := range ifaces {
		if ifi.Flags&net.FlagLoopback != 0 || ifi.Flags&net.FlagRunning == 0 {
			continue
		}
		addrs, err := ifi.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipn, ok := addr.(*net.IPNet)
			if !ok || ipn.IP.IsLoopback() {
				continue
			}
			v4 := ipn.IP.To4() != nil
			switch fam {
			case FamilyIPv4:
				if !v4 {
					continue
				}
			case FamilyIPv6:
				if v4 || ipn.IP.IsLinkLocalUnicast() {
					continue
				}
			}
			return hostFor(ipn.IP), true
		}
	}
	return "", false
}

// hostFor reverse-resolves an address, falling back to the literal when the
// name is unusable on a display.
func hostFor(ip net.IP) string {
	if names, err := net.LookupAddr(ip.String()); err == nil && len(names) > 0 {
		name := strings.TrimSuffix(names[0], ".")
		if !blacklisted(name) {
			return name
		}
	}
	return ip.String()
}

// blacklisted hostnames say nothing about reachability.
func blacklisted(host string) bool {
	return host == "localhost"
}

// URL renders the rescue interface address for the display. IPv6 literals
// are bracketed.
func URL(host string, fam Family) string {
	if fam == FamilyIPv6 && strings.Contains(host, ":") {
		return fmt.Sprintf("http://[%s]/", host)
	}
	return fmt.Sprintf("http://%s/", host)
}
