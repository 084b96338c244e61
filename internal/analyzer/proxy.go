package analyzer

import (
	"context"
	"fmt"
	"net"

	"golang.org/x/net/proxy"
)

type dialContextFunc func(ctx context.Context, network, address string) (net.Conn, error)

// socksDialContext builds a context-aware dial function for a SOCKS5 proxy.
func socksDialContext(address string) (dialContextFunc, error) {
	dialer, err := proxy.SOCKS5("tcp", address, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("failed to create SOCKS5 dialer for %s: %w", address, err)
	}
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		return cd.DialContext, nil
	}
	return func(ctx context.Context, network, address string) (net.Conn, error) {
		return dialWithContext(ctx, dialer, network, address)
	}, nil
}

// dialWithContext dials through a dialer that has no context support and
// gives up when ctx is done.
func dialWithContext(ctx context.Context, dialer proxy.Dialer, network, address string) (net.Conn, error) {
	type dialResult struct {
		conn net.Conn
		err  error
	}

	resultCh := make(chan dialResult, 1)
	go func() {
		conn, err := dialer.Dial(network, address)
		resultCh <- dialResult{conn, err}
	}()

	select {
	case <-ctx.Done():
		go func() {
			if r := <-resultCh; r.conn != nil {
				_ = r.conn.Close()
			}
		}()
		return nil, ctx.Err()
	case result := <-resultCh:
		return result.conn, result.err
	}
}
