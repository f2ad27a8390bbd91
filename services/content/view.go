package content

import (
	"context"
	"sync"

	"github.com/cinepeek/web-ui/models"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

// ErrSuperseded is returned by View.Load when a newer load replaced it before it settled.
var ErrSuperseded = errors.New("load superseded by a newer identifier")

type ViewOption func(v *View)

// WithOnChange registers fn to receive every accepted state transition.
// fn runs with the view locked and must not call back into the view.
func WithOnChange(fn func(s Snapshot)) ViewOption {
	return func(v *View) {
		v.onChange = fn
	}
}

// View holds the state of one detail view. Each Load starts a new generation;
// writes made on behalf of an older generation are discarded.
type View struct {
	resolver *Resolver
	fetcher  *Fetcher
	onChange func(s Snapshot)

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	state  Snapshot
}

func newView(r *Resolver, f *Fetcher, opts ...ViewOption) *View {
	v := &View{
		resolver: r,
		fetcher:  f,
		state:    Snapshot{Loading: true},
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.clone()
}

// Close cancels the in-flight load, if any. Later writes from it are dropped.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.gen++
}

// Load resolves id, then fetches its details and videos concurrently, and blocks until
// both settled. The previous load, if still running, is cancelled.
func (v *View) Load(ctx context.Context, id string) (Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gen := v.begin(id, cancel)
	return v.run(ctx, gen, id)
}

// Start supersedes the current load with id before returning, then loads it in the
// background. wait blocks until that load settled and returns what Load would.
func (v *View) Start(ctx context.Context, id string) (wait func() (Snapshot, error)) {
	ctx, cancel := context.WithCancel(ctx)
	gen := v.begin(id, cancel)

	var (
		snap Snapshot
		err  error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		snap, err = v.run(ctx, gen, id)
	}()
	return func() (Snapshot, error) {
		<-done
		return snap, err
	}
}

func (v *View) run(ctx context.Context, gen uint64, id string) (Snapshot, error) {
	res := v.resolver.Resolve(ctx, id)
	kind, found := res.Kind()
	ok := v.apply(gen, func(s *Snapshot) {
		s.Loading = false
		s.Resolution = res
		s.DetailsPending = found
		s.VideosPending = found
	})
	if !ok {
		return Snapshot{}, v.abandoned(ctx)
	}
	if found {
		v.fetch(ctx, gen, kind, id)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.gen != gen {
		return Snapshot{}, v.abandoned(ctx)
	}
	v.cancel = nil
	if err := ctx.Err(); err != nil {
		return v.state.clone(), err
	}
	return v.state.clone(), nil
}

func (v *View) begin(id string, cancel context.CancelFunc) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	v.cancel = cancel
	v.state = Snapshot{
		ContentID:  id,
		Generation: v.gen,
		Loading:    true,
	}
	v.notifyLocked()
	return v.gen
}

func (v *View) fetch(ctx context.Context, gen uint64, kind models.ContentKind, id string) {
	var wg conc.WaitGroup
	wg.Go(func() {
		d, _ := v.fetcher.FetchDetails(ctx, kind, id)
		v.apply(gen, func(s *Snapshot) {
			s.Details = d
			s.DetailsPending = false
		})
	})
	wg.Go(func() {
		videos, _ := v.fetcher.FetchVideos(ctx, kind, id)
		v.apply(gen, func(s *Snapshot) {
			s.Videos = videos
			s.VideosPending = false
		})
	})
	wg.Wait()
}

func (v *View) apply(gen uint64, fn func(s *Snapshot)) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		log.WithField("content_id", v.state.ContentID).
			WithField("generation", gen).
			Debug("discarding stale content state")
		return false
	}
	fn(&v.state)
	v.notifyLocked()
	return true
}

func (v *View) abandoned(ctx context.Context) error {
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return ErrSuperseded
}

func (v *View) notifyLocked() {
	if v.onChange != nil {
		v.onChange(v.state.clone())
	}
}
