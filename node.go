package uuid

import (
	"crypto/md5"
	"errors"
	"io"
	"log/slog"
	"net"
	"os"
	"runtime"
	"slices"
)

// Node is the 48-bit node field of a version 1 UUID: an IEEE 802 MAC address
// of the generating host, or a pseudo-random value with the multicast bit set.
type Node uint64

const (
	nodeMask = 1<<48 - 1

	// multicastBit is the least significant bit of the first octet of the
	// address. Hardware addresses never have it set.
	multicastBit Node = 1 << 40
)

// NodeFromHardwareAddr packs the first six octets of addr, first octet most
// significant. It reports false when addr is shorter than six octets.
func NodeFromHardwareAddr(addr net.HardwareAddr) (Node, bool) {
	if len(addr) < 6 {
		return 0, false
	}
	var n Node
	for _, b := range addr[:6] {
		n = n<<8 | Node(b)
	}
	return n, true
}

// HardwareAddr returns the node as six octets in transmission order.
func (n Node) HardwareAddr() net.HardwareAddr {
	addr := make(net.HardwareAddr, 6)
	for i := 5; i >= 0; i-- {
		addr[i] = byte(n)
		n >>= 8
	}
	return addr
}

// IsRandom reports whether the multicast bit is set, which marks a node that
// did not come from a network card.
func (n Node) IsRandom() bool {
	return n&multicastBit != 0
}

func (n Node) String() string {
	return n.HardwareAddr().String()
}

var (
	errNoHostAddress  = errors.New("uuid: host name did not resolve to an address")
	errNoInterface    = errors.New("uuid: no interface found for host address")
	errNoHardwareAddr = errors.New("uuid: no hardware address found")
)

// hostInterface is the part of a network interface the resolver looks at.
type hostInterface struct {
	hw    net.HardwareAddr
	addrs []net.IP
}

// nodeResolver derives the node of this host. Its lookups are replaceable so
// the fallback chain can be driven without touching the network.
type nodeResolver struct {
	hostname   func() (string, error)
	lookupIP   func(host string) ([]net.IP, error)
	interfaces func() ([]hostInterface, error)
	platform   func() []string
	logger     *slog.Logger
}

func newNodeResolver(logger *slog.Logger) nodeResolver {
	return nodeResolver{
		hostname:   os.Hostname,
		lookupIP:   net.LookupIP,
		interfaces: systemInterfaces,
		platform:   platformStrings,
		logger:     logger,
	}
}

// resolve returns the hardware address of the host's primary interface, or a
// pseudo-random node when there is none.
func (r nodeResolver) resolve() Node {
	node, err := r.hardwareNode()
	if err == nil {
		r.logger.Debug("uuid: using hardware node", "node", node)
		return node
	}
	node = r.randomNode()
	r.logger.Debug("uuid: using random node", "node", node, "reason", err)
	return node
}

// hardwareNode finds the interface carrying the address the host name
// resolves to and packs its hardware address.
func (r nodeResolver) hardwareNode() (Node, error) {
	host, err := r.hostname()
	if err != nil {
		return 0, err
	}
	ips, err := r.lookupIP(host)
	if err != nil {
		return 0, err
	}
	if len(ips) == 0 {
		return 0, errNoHostAddress
	}
	ifaces, err := r.interfaces()
	if err != nil {
		return 0, err
	}

	primary := ips[0]
	for _, iface := range ifaces {
		if !slices.ContainsFunc(iface.addrs, primary.Equal) {
			continue
		}
		node, ok := NodeFromHardwareAddr(iface.hw)
		if !ok {
			return 0, errNoHardwareAddr
		}
		return node, nil
	}
	return 0, errNoInterface
}

// randomNode digests every locally known address together with a description
// of the platform. The result is stable for a given host but carries the
// multicast bit so it can never equal a real hardware address.
func (r nodeResolver) randomNode() Node {
	h := md5.New()
	for _, s := range r.localAddresses() {
		io.WriteString(h, s)
	}
	for _, s := range r.platform() {
		io.WriteString(h, s)
	}
	sum := h.Sum(nil)

	var node Node
	for i := 0; i < 6; i++ {
		node |= Node(sum[i]) << (8 * i)
	}
	return node | multicastBit
}

// localAddresses collects, best effort, the host name, its addresses and the
// addresses of every interface. The result is sorted and free of duplicates.
func (r nodeResolver) localAddresses() []string {
	seen := make(map[string]struct{})
	add := func(s string) {
		if s != "" {
			seen[s] = struct{}{}
		}
	}

	host, err := r.hostname()
	if err != nil {
		r.logger.Debug("uuid: host name unavailable", "error", err)
	}
	add(host)

	var ips []net.IP
	if host != "" {
		ips, err = r.lookupIP(host)
		if err != nil {
			r.logger.Debug("uuid: host name lookup failed", "host", host, "error", err)
		}
	}
	if len(ips) == 0 {
		ips = []net.IP{net.IPv4(127, 0, 0, 1)}
	}
	for _, ip := range ips {
		add(ip.String())
	}

	ifaces, err := r.interfaces()
	if err != nil {
		r.logger.Debug("uuid: interface listing failed", "error", err)
	}
	for _, iface := range ifaces {
		for _, ip := range iface.addrs {
			add(ip.String())
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

func systemInterfaces() ([]hostInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	out := make([]hostInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		hi := hostInterface{hw: iface.HardwareAddr}
		addrs, err := iface.Addrs()
		if err != nil {
			// one unreadable interface does not spoil the rest
			out = append(out, hi)
			continue
		}
		for _, addr := range addrs {
			switch a := addr.(type) {
			case *net.IPNet:
				hi.addrs = append(hi.addrs, a.IP)
			case *net.IPAddr:
				hi.addrs = append(hi.addrs, a.IP)
			}
		}
		out = append(out, hi)
	}
	return out, nil
}

// platformStrings describes the runtime, in the order vendor, vendor URL,
// runtime version, architecture, OS name, OS release.
func platformStrings() []string {
	return []string{
		runtime.Compiler,
		"https://go.dev",
		runtime.Version(),
		runtime.GOARCH,
		runtime.GOOS,
		osRelease(),
	}
}
