package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/internal/utils"
)

// DefaultSessionCheckInterval is used when a non-positive interval is given.
const DefaultSessionCheckInterval = time.Minute

type sessionExpiryWorker struct {
	session  ExpiringSession
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSessionExpiryWorker creates a worker that logs the session out once the
// persisted JWT passes its exp claim. It is idle until Start is called.
func NewSessionExpiryWorker(session ExpiringSession, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultSessionCheckInterval
	}
	return &sessionExpiryWorker{
		session:  session,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Start stops any previously running loop, then launches a goroutine that
// checks the token every interval. The goroutine exits when ctx is cancelled
// or Stop is called.
func (w *sessionExpiryWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.check(jobCtx)
			}
		}
	}()
}

func (w *sessionExpiryWorker) check(ctx context.Context) {
	token := w.session.Token()
	if token == "" || !utils.IsTokenExpired(token, w.now()) {
		return
	}

	w.logger.Info().Str("func", "sessionExpiryWorker.check").Msg("session token expired, logging out")
	w.session.Logout(ctx)
}

func (w *sessionExpiryWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
