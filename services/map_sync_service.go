package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/WanderPlan/wanderplan-backend/config"
	"github.com/WanderPlan/wanderplan-backend/logger"
	"github.com/WanderPlan/wanderplan-backend/pkg/geocode"
	"github.com/WanderPlan/wanderplan-backend/types"
)

// Clock abstracts delayed scheduling so retry and settle waits can be driven
// in tests without real sleeps.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// MapSyncService keeps the rendering surface's marker set in sync with the
// selected day's activities. Each sync request supersedes any in-flight one:
// requests carry a generation number, and a request that finds itself stale
// after its geocoding settles discards its results instead of installing them.
//
// The engine exclusively owns the surface's marker set. Geocoding failures
// for individual places are silent; a surface that never becomes ready within
// the retry budget abandons the sync with a log line and nothing else.
type MapSyncService struct {
	geocoder    geocode.Resolver
	surface     types.MapSurface
	destination string
	cfg         config.MapSyncConfig
	clock       Clock

	generation atomic.Int64

	mu        sync.Mutex
	installed []types.Marker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewMapSyncService(geocoder geocode.Resolver, surface types.MapSurface, destination string, cfg config.MapSyncConfig) *MapSyncService {
	if cfg.ReadyRetryInterval <= 0 {
		cfg.ReadyRetryInterval = 500 * time.Millisecond
	}
	if cfg.ReadyRetryAttempts <= 0 {
		cfg.ReadyRetryAttempts = 5
	}
	if cfg.ResizeSettleDelay <= 0 {
		cfg.ResizeSettleDelay = 200 * time.Millisecond
	}
	if cfg.FitMargin <= 0 {
		cfg.FitMargin = 60
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &MapSyncService{
		geocoder:    geocoder,
		surface:     surface,
		destination: destination,
		cfg:         cfg,
		clock:       realClock{},
		ctx:         ctx,
		cancel:      cancel,
	}
}

// SyncMarkers replaces the surface's marker set with markers for the given
// activities. It returns immediately; the sync proceeds in the background and
// is dropped silently if a newer call supersedes it.
func (s *MapSyncService) SyncMarkers(activities []types.Activity) {
	gen := s.generation.Add(1)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.sync(gen, activities)
	}()
}

func (s *MapSyncService) sync(gen int64, activities []types.Activity) {
	log := logger.GetLogger()

	if !s.awaitReady(gen) {
		if s.live(gen) {
			log.Errorw("Map surface not ready, abandoning marker sync",
				"generation", gen,
				"attempts", s.cfg.ReadyRetryAttempts)
		}
		return
	}
	if !s.live(gen) {
		return
	}

	// The stale set comes off before any lookup is issued, so the surface
	// never shows the previous day's markers next to the new day's.
	s.surface.ClearMarkers()
	s.mu.Lock()
	s.installed = nil
	s.mu.Unlock()

	markers := resolveMarkers(s.ctx, s.geocoder, s.destination, activities)

	// Every lookup has settled; install only if no newer sync started while
	// we were resolving.
	if !s.live(gen) {
		log.Debugw("Marker sync superseded, discarding results", "generation", gen)
		return
	}
	if len(markers) == 0 {
		// The clear above already emptied the surface.
		return
	}

	s.mu.Lock()
	s.installed = markers
	s.mu.Unlock()

	s.surface.InstallMarkers(markers)
	s.surface.FitViewport(markers, types.UniformMargins(s.cfg.FitMargin))
	log.Debugw("Markers synced",
		"generation", gen,
		"activities", len(activities),
		"installed", len(markers))
}

// resolveMarkers geocodes one marker per locatable activity, concurrently.
// Lookups that fail drop their marker silently; survivors keep activity
// order. Activities without a location name are skipped.
func resolveMarkers(ctx context.Context, geocoder geocode.Resolver, destination string, activities []types.Activity) []types.Marker {
	log := logger.GetLogger()

	targets := make([]types.Activity, 0, len(activities))
	for _, act := range activities {
		if act.LocationName != "" {
			targets = append(targets, act)
		}
	}
	if len(targets) == 0 {
		return []types.Marker{}
	}

	resolved := make([]*types.Marker, len(targets))
	var wg sync.WaitGroup
	for i, act := range targets {
		wg.Add(1)
		go func(i int, act types.Activity) {
			defer wg.Done()
			// Prefixing with the destination disambiguates place names
			// that exist in more than one city.
			coord, err := geocoder.Resolve(ctx, destination+act.LocationName)
			if err != nil {
				log.Debugw("Geocoding failed, omitting marker",
					"place", act.LocationName,
					"error", err)
				return
			}
			resolved[i] = &types.Marker{
				Title:       act.Title,
				Description: act.Description,
				Position:    coord,
			}
		}(i, act)
	}
	wg.Wait()

	markers := make([]types.Marker, 0, len(resolved))
	for _, m := range resolved {
		if m != nil {
			markers = append(markers, *m)
		}
	}
	return markers
}

// awaitReady polls surface readiness, waiting a fixed interval between
// checks, up to the configured attempt budget.
func (s *MapSyncService) awaitReady(gen int64) bool {
	for attempt := 0; ; attempt++ {
		if s.surface.Ready() {
			return true
		}
		if attempt >= s.cfg.ReadyRetryAttempts {
			return false
		}
		select {
		case <-s.ctx.Done():
			return false
		case <-s.clock.After(s.cfg.ReadyRetryInterval):
		}
		if !s.live(gen) {
			return false
		}
	}
}

// HandleViewportChange reacts to the surface's container changing size, e.g.
// a panel expanding or collapsing. The surface is told to re-measure after a
// short settle delay, then the viewport is re-fit over the installed set.
func (s *MapSyncService) HandleViewportChange() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		select {
		case <-s.ctx.Done():
			return
		case <-s.clock.After(s.cfg.ResizeSettleDelay):
		}
		if !s.surface.Ready() {
			return
		}
		s.surface.Resize()

		s.mu.Lock()
		current := make([]types.Marker, len(s.installed))
		copy(current, s.installed)
		s.mu.Unlock()

		if len(current) > 0 {
			s.surface.FitViewport(current, types.UniformMargins(s.cfg.FitMargin))
		}
	}()
}

// InstalledMarkers returns a copy of the marker set currently on the surface.
func (s *MapSyncService) InstalledMarkers() []types.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Marker, len(s.installed))
	copy(out, s.installed)
	return out
}

// Close cancels in-flight syncs and waits for their goroutines to drain.
// The surface is left untouched.
func (s *MapSyncService) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *MapSyncService) live(gen int64) bool {
	return s.ctx.Err() == nil && gen == s.generation.Load()
}
