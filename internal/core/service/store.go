// Package service holds the client-side core: the per-entity stores and the
// session manager. Stores own their caches exclusively; the session manager
// owns the authenticated principal and the persisted credential pair.
package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/edusync/schoolclient/internal/core/ports"
	"github.com/edusync/schoolclient/internal/metrics"
)

// Store caches one entity collection and keeps it consistent with confirmed
// server state: mutations touch the cache only after the service has accepted
// them, so the cache never shows a record the server has not.
//
// Two racing mutations for the same id are not serialized here; the last
// response to arrive wins in the cache. The wire protocol offers no version
// or timestamp to do better with.
type Store[E, D, P any] struct {
	entity  string
	path    string
	gw      ports.Gateway
	mapper  ports.Mapper[E, D, P]
	prepend bool
	log     zerolog.Logger

	mu      sync.RWMutex
	records []E
	loading bool
}

func newStore[E, D, P any](entity, path string, gw ports.Gateway, mapper ports.Mapper[E, D, P], prepend bool, log zerolog.Logger) *Store[E, D, P] {
	return &Store[E, D, P]{
		entity:  entity,
		path:    path,
		gw:      gw,
		mapper:  mapper,
		prepend: prepend,
		log:     log.With().Str("entity", entity).Logger(),
	}
}

// Load fetches the full collection and replaces the cache with the valid
// records, wholesale. Load is best-effort: on a failed request the cache is
// cleared and the failure logged, never returned — callers observe an empty
// list rather than a broken one. Records without a resolvable id are dropped
// and counted.
func (s *Store[E, D, P]) Load(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	recs, err := s.gw.GetList(ctx, s.path)
	if err != nil {
		s.log.Error().Err(err).Msg("load failed, clearing cache")
		s.replace(nil)
		return
	}

	valid := make([]E, 0, len(recs))
	dropped := 0
	for _, rec := range recs {
		e, err := s.mapper.FromWire(rec)
		if err != nil {
			dropped++
			metrics.RecordsDroppedTotal.WithLabelValues(s.entity).Inc()
			s.log.Warn().Err(err).Msg("dropping wire record")
			continue
		}
		valid = append(valid, e)
	}
	s.replace(valid)

	s.log.Debug().Int("loaded", len(valid)).Int("dropped", dropped).Msg("cache replaced")
}

// Get is a pure cache lookup; it never calls the service.
func (s *Store[E, D, P]) Get(id string) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.records {
		if s.mapper.ID(e) == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// All returns a copy of the cached collection in cache order.
func (s *Store[E, D, P]) All() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]E, len(s.records))
	copy(out, s.records)
	return out
}

// Loading reports whether a Load call is in flight.
func (s *Store[E, D, P]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Create sends the draft and, once the service confirms, inserts the mapped
// response into the cache (posts prepend, profiles append). On failure the
// cache is untouched and the error propagates so the caller can offer a
// retry.
func (s *Store[E, D, P]) Create(ctx context.Context, draft D) (E, error) {
	var zero E

	resp, err := s.gw.Post(ctx, s.path, s.mapper.DraftToWire(draft))
	if err != nil {
		return zero, err
	}

	e, err := s.mapper.FromWire(resp)
	if err != nil {
		// Confirmed by the service but unusable: without an id the record
		// can never enter the cache.
		return zero, err
	}

	s.mu.Lock()
	if s.prepend {
		s.records = append([]E{e}, s.records...)
	} else {
		s.records = append(s.records, e)
	}
	metrics.CacheSize.WithLabelValues(s.entity).Set(float64(len(s.records)))
	s.mu.Unlock()

	return e, nil
}

// Update sends a sparse partial update and, on confirmation, merges the
// client-schema patch (not the wire response) into the cached record. A nil
// return is success.
func (s *Store[E, D, P]) Update(ctx context.Context, id string, patch P) error {
	if _, err := s.gw.Patch(ctx, s.path+"/"+id, s.mapper.PatchToWire(patch)); err != nil {
		return err
	}

	s.mu.Lock()
	for i, e := range s.records {
		if s.mapper.ID(e) == id {
			s.records[i] = s.mapper.Merge(e, patch)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Delete removes the record on the service and then from the cache.
func (s *Store[E, D, P]) Delete(ctx context.Context, id string) error {
	if err := s.gw.Delete(ctx, s.path+"/"+id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.records[:0]
	for _, e := range s.records {
		if s.mapper.ID(e) != id {
			kept = append(kept, e)
		}
	}
	s.records = kept
	metrics.CacheSize.WithLabelValues(s.entity).Set(float64(len(s.records)))
	s.mu.Unlock()
	return nil
}

func (s *Store[E, D, P]) replace(records []E) {
	s.mu.Lock()
	s.records = records
	metrics.CacheSize.WithLabelValues(s.entity).Set(float64(len(records)))
	s.mu.Unlock()
}

func (s *Store[E, D, P]) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
