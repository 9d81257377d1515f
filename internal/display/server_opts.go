package display

import "time"

type NatsBusOpt func(*NatsBus)

// WithStartTimeout sets the startup timeout for the bus
func WithStartTimeout(d time.Duration) NatsBusOpt {
	return func(b *NatsBus) {
		b.startupTimeout = d
	}
}

// WithHost sets the host for the bus
func WithHost(host string) NatsBusOpt {
	return func(b *NatsBus) {
		b.host = host
	}
}

// WithPort sets the port for the bus
func WithPort(port int) NatsBusOpt {
	return func(b *NatsBus) {
		b.port = port
	}
}
