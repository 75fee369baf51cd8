package logistics

import (
	"context"
	"net"
	"time"

	"logistics/internal/core/ports"
)

// DefaultProbeTimeout bounds one connectivity check. Probes must answer fast;
// a slow network is treated as unavailable for the purpose of failing early.
const DefaultProbeTimeout = 2 * time.Second

// Probe reports connectivity by dialing the logistics backend's TCP address.
type Probe struct {
	address string
	timeout time.Duration
}

// NewProbe creates a connectivity probe for host:port.
func NewProbe(address string, timeout time.Duration) *Probe {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Probe{address: address, timeout: timeout}
}

var _ ports.ConnectivityProbe = (*Probe)(nil)

// Online reports whether a TCP connection to the backend can be established
// within the probe timeout.
func (p *Probe) Online(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return false
	}

	_ = conn.Close()
	return true
}
