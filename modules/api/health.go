package api

import (
	"context"
	"net"
	"time"
)

// networkProbe reports whether the outside network is reachable.
type networkProbe func(ctx context.Context) bool

// tcpProbe returns a probe that succeeds when a TCP handshake with addr completes within timeout.
func tcpProbe(addr string, timeout time.Duration) networkProbe {
	return func(ctx context.Context) bool {
		dialer := net.Dialer{Timeout: timeout}
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}
}
