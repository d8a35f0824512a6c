package netinfo

import (
	"log/slog"
	"net"
)

// Placeholder is reported when a local lookup fails. Lookups never
// return an error to the caller.
const Placeholder = "unavailable"

// LocalIPv4 returns the first non-loopback IPv4 address of the host.
func LocalIPv4() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return Placeholder
	}

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}

	return Placeholder
}

// HardwareAddr returns the hardware address of the first active
// non-loopback interface.
func HardwareAddr() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return Placeholder
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		if hw := iface.HardwareAddr.String(); hw != "" {
			return hw
		}
	}

	return Placeholder
}

// Report logs the local network configuration once at startup.
func Report(logger *slog.Logger) {
	logger.Info("Local network configuration",
		slog.String("ipv4", LocalIPv4()),
		slog.String("mac", HardwareAddr()))
}
