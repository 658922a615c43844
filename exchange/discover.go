package exchange

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hpav/hpav/ethernet"
	"github.com/hpav/hpav/mme"
	"github.com/hpav/hpav/netif"
)

// Station is one entry from a discovery pass: Addr is the address of the
// station that replied, and Record is one station record from that reply's
// DiscoverList.
type Station struct {
	Addr   ethernet.Addr
	Record mme.Station
}

// Discover broadcasts a CC_DISCOVER_LIST.REQ on sock and collects every
// CC_DISCOVER_LIST.CNF reply until the timeout elapses, returning the
// union of every responding station's own station list. Unlike Request,
// Discover expects — and keeps listening for — replies from multiple
// stations rather than stopping at the first one.
func Discover(ctx context.Context, sock netif.Socket, opts ...Option) ([]Station, error) {
	cfg := newConfig(opts)

	buf := make([]byte, bufLen)
	n, err := (mme.DiscoverListRequest{}).Encode(buf)
	if err != nil {
		return nil, err
	}
	if n < mme.MinMMELen {
		n = mme.MinMMELen
	}
	if err := sock.Send(ctx, ethernet.Broadcast, buf[:n]); err != nil {
		return nil, err
	}

	wantCnf := mme.CC_DISCOVER_LIST.Cnf()
	deadline := time.Now().Add(cfg.timeout)
	var out []Station

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return out, nil
		}
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		src, payload, err := sock.Receive(ctx, remaining)
		if err != nil {
			return out, err
		}
		if payload == nil {
			return out, nil
		}

		h, body := mme.ParseHeader(payload)
		switch {
		case h.MMType == wantCnf:
			for _, s := range mme.DiscoverList(body).Stations() {
				out = append(out, Station{Addr: src, Record: s})
			}
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
			}).Debug("ignoring unexpected message while discovering")
		}
	}
}
