package draft

import (
	"sync"
	"time"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/rs/zerolog"
)

// Autosaver writes the current editor snapshot into the slot on a fixed
// interval. Empty snapshots are skipped. Stop must be called on teardown
// so the ticker does not keep operating on stale state.
type Autosaver struct {
	store    *Store
	interval time.Duration
	snapshot func() *models.Draft
	log      zerolog.Logger

	mu     sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
}

// NewAutosaver creates an autosaver that pulls snapshots from the given
// callback
func NewAutosaver(store *Store, interval time.Duration, snapshot func() *models.Draft, log zerolog.Logger) *Autosaver {
	return &Autosaver{
		store:    store,
		interval: interval,
		snapshot: snapshot,
		log:      log.With().Str("component", "draft_autosaver").Logger(),
	}
}

// Start begins the autosave timer. Starting an already-running autosaver
// is a no-op.
func (a *Autosaver) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ticker != nil {
		return
	}

	a.ticker = time.NewTicker(a.interval)
	a.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				a.tick()
			case <-done:
				return
			}
		}
	}(a.ticker, a.done)
}

// Stop cancels the autosave timer
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	close(a.done)
	a.ticker = nil
	a.done = nil
}

func (a *Autosaver) tick() {
	d := a.snapshot()
	if d == nil || d.IsEmpty() {
		return
	}
	if status := a.store.Save(d); status == StatusFailed {
		a.log.Warn().Msg("Autosave failed")
	}
}
