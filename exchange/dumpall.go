package exchange

import (
	"context"
	"sync"
)

// DumpAll runs Discover concurrently across every socket in socks (keyed
// by interface name) and returns each interface's station list, keyed the
// same way. Each goroutine owns only its own socket and result slot; the
// only shared state is the result map itself, guarded by a mutex exactly
// where the rest of this module's single-call paths need none, since this
// is the one operation the module runs in parallel.
func DumpAll(ctx context.Context, socks map[string]Socket, opts ...Option) map[string][]Station {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(map[string][]Station, len(socks))
	)

	for name, sock := range socks {
		wg.Add(1)
		go func(name string, sock Socket) {
			defer wg.Done()
			stations, err := Discover(ctx, sock, opts...)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				out[name] = stations
			}
		}(name, sock)
	}

	wg.Wait()
	return out
}
