// Package netprobe decides whether the cloud backends are worth calling.
package netprobe

import (
	"context"
	"log/slog"
	"net"
	"time"
)

const (
	DefaultAddress = "8.8.8.8:53"
	DefaultTimeout = 2 * time.Second
)

// Probe dials a well-known always-up TCP endpoint. It is safe for concurrent use.
type Probe struct {
	address string
	timeout time.Duration
	dialer  net.Dialer
	log     *slog.Logger
}

// New creates a Probe. Empty address or non-positive timeout fall back to defaults.
func New(logger *slog.Logger, address string, timeout time.Duration) *Probe {
	if address == "" {
		address = DefaultAddress
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Probe{
		address: address,
		timeout: timeout,
		log:     logger.With("component", "netprobe"),
	}
}

// IsOnline reports whether a TCP connection to the probe address can be
// opened within the timeout. Any failure means offline.
func (p *Probe) IsOnline(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		p.log.DebugContext(ctx, "probe offline", slog.String("address", p.address), slog.String("error", err.Error()))
		return false
	}
	_ = conn.Close()
	return true
}
