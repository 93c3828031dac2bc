package ticker

import (
	"context"
	"sync"
	"time"
)

// Config contains runtime options for Driver.
type Config struct {
	Interval time.Duration
	// Dispatch runs fn on the goroutine that owns the ticked state.
	// A nil Dispatch calls fn directly on the driver goroutine.
	Dispatch func(fn func())
}

// Driver calls a tick function once per interval while armed.
type Driver struct {
	mu         sync.Mutex
	options    Config
	onTick     func()
	cancel     context.CancelFunc
	generation uint64
}

// New creates a disarmed Driver.
func New(options Config, onTick func()) *Driver {
	if options.Interval <= 0 {
		options.Interval = time.Second
	}
	if options.Dispatch == nil {
		options.Dispatch = func(fn func()) { fn() }
	}
	return &Driver{
		options: options,
		onTick:  onTick,
	}
}

// Start arms the driver. The first tick fires one interval later.
// Starting an armed driver does nothing.
func (driver *Driver) Start() {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if driver.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	driver.cancel = cancel
	driver.generation++
	go driver.run(ctx, driver.generation)
}

// Stop disarms the driver. It is safe to call from inside a tick.
// Ticks already handed to Dispatch are dropped.
func (driver *Driver) Stop() {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if driver.cancel == nil {
		return
	}
	driver.cancel()
	driver.cancel = nil
	driver.generation++
}

// Armed reports whether the driver is currently ticking.
func (driver *Driver) Armed() bool {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.cancel != nil
}

func (driver *Driver) run(ctx context.Context, generation uint64) {
	ticker := time.NewTicker(driver.options.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			driver.options.Dispatch(func() {
				if driver.current(generation) {
					driver.onTick()
				}
			})
		}
	}
}

func (driver *Driver) current(generation uint64) bool {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.cancel != nil && driver.generation == generation
}
