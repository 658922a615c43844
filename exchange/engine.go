// Package exchange implements the synchronous request/reply engine this
// module uses to talk to HomePlug AV stations: a single unicast
// request-and-wait-for-confirmation call, a broadcast discovery pass, and
// a parallel multi-interface "dump" built on top of the same primitives.
package exchange

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hpav/hpav/ethernet"
	"github.com/hpav/hpav/herrors"
	"github.com/hpav/hpav/mme"
	"github.com/hpav/hpav/netif"
)

// Socket is the link-layer socket type this package operates on.
type Socket = netif.Socket

// defaultTimeout is used when no WithTimeout option is given.
const defaultTimeout = time.Second

// bufLen is sized generously above mme.MinMMELen to leave room for the
// largest body this module encodes (a vendor SetProperty request).
const bufLen = 128

// config holds the options collected from a Request/Discover/DumpAll call.
type config struct {
	timeout time.Duration
	logger  *logrus.Logger
}

// Option configures a Request, Discover, or DumpAll call.
type Option func(*config)

// WithTimeout overrides the default one-second wait for a reply.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithLogger overrides the default standard logrus logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{timeout: defaultTimeout, logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request sends req to dest on sock and waits for the matching
// confirmation, decoding its body with decode. It returns a zero R and a
// nil error if no reply arrives before the timeout — a timeout is a
// routine outcome in this protocol, not a failure. A CM_MME_ERROR
// indication received while waiting is logged and does not end the
// wait; only a timeout, a context cancellation, a socket error, or the
// matching confirmation itself returns from the loop. The encoded request
// is zero-padded to mme.MinMMELen octets before it is sent.
func Request[R any](ctx context.Context, sock netif.Socket, dest ethernet.Addr, req mme.Request, decode func([]byte) R, opts ...Option) (R, error) {
	var zero R
	cfg := newConfig(opts)

	buf := make([]byte, bufLen)
	n, err := req.Encode(buf)
	if err != nil {
		return zero, &herrors.NetworkError{Operation: "encode request", Err: err}
	}
	if n < mme.MinMMELen {
		n = mme.MinMMELen
	}
	if err := sock.Send(ctx, dest, buf[:n]); err != nil {
		return zero, err
	}

	deadline := time.Now().Add(cfg.timeout)
	wantCnf := req.MMType().Cnf()

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return zero, nil
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		src, payload, err := sock.Receive(ctx, remaining)
		if err != nil {
			return zero, err
		}
		if payload == nil {
			return zero, nil
		}
		if dest.IsUnicast() && src != dest {
			continue
		}

		h, body := mme.ParseHeader(payload)
		switch {
		case h.MMType == wantCnf:
			return decode(body), nil
		case h.MMType.Base() == mme.CM_MME_ERROR.Base() && h.MMType.CodeOf() == mme.CodeInd:
			mmeErr := mme.MMEError(body)
			cfg.logger.WithFields(logrus.Fields{
				"station": src.String(),
				"error":   mmeErr.Error(),
				"mmtype":  mmeErr.MMType().String(),
			}).Warn("station reported a protocol error")
		default:
			cfg.logger.WithFields(logrus.Fields{
				"station": src.String(),
				"mmtype":  h.MMType.String(),
			}).Debug("ignoring unexpected message while waiting for reply")
		}
	}
}
