package memory

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-viewer/internal/usecase"
)

const baseURL = "memory://fpl"

type eventKey struct {
	entryID int64
	round   int
}

// Provider serves FPL payloads from memory. Unknown ids answer like an upstream 404.
type Provider struct {
	mu sync.RWMutex

	draftLeagues     map[int64]usecase.ExternalDraftLeague
	bootstrap        usecase.ExternalDraftBootstrap
	publics          map[int64]usecase.ExternalDraftEntryPublic
	events           map[eventKey]usecase.ExternalDraftEntryEvent
	histories        map[int64]usecase.ExternalDraftEntryHistory
	classicEntries   map[int64]usecase.ExternalClassicEntry
	classicHistories map[int64]usecase.ExternalClassicHistory
	classicStandings map[int64]usecase.ExternalClassicStandings

	failures map[string]error
	calls    map[string]int
}

func NewProvider(seed Seed) *Provider {
	p := &Provider{
		draftLeagues:     copyMap(seed.DraftLeagues),
		bootstrap:        seed.Bootstrap,
		publics:          copyMap(seed.Publics),
		events:           make(map[eventKey]usecase.ExternalDraftEntryEvent, len(seed.Events)),
		histories:        copyMap(seed.Histories),
		classicEntries:   copyMap(seed.ClassicEntries),
		classicHistories: copyMap(seed.ClassicHistories),
		classicStandings: copyMap(seed.ClassicStandings),
		failures:         make(map[string]error),
		calls:            make(map[string]int),
	}
	for entryID, rounds := range seed.Events {
		for round, event := range rounds {
			p.events[eventKey{entryID: entryID, round: round}] = event
		}
	}
	return p
}

// FailCall makes every request for call return err until cleared with a nil err.
func (p *Provider) FailCall(call string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err == nil {
		delete(p.failures, call)
		return
	}
	p.failures[call] = err
}

// RemoveHistory drops the stored history of an entry so it answers 404.
func (p *Provider) RemoveHistory(entryID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.histories, entryID)
}

// Calls returns how many requests were made for call.
func (p *Provider) Calls(call string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.calls[call]
}

// TotalCalls returns the number of requests across all calls.
func (p *Provider) TotalCalls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	total := 0
	for _, n := range p.calls {
		total += n
	}
	return total
}

func (p *Provider) FetchDraftLeagueDetails(ctx context.Context, leagueID int64) (usecase.ExternalDraftLeague, error) {
	path := fmt.Sprintf("/league/%d/details", leagueID)
	return lookup(ctx, p, usecase.CallLeagueDetails, path, func() (usecase.ExternalDraftLeague, bool) {
		v, ok := p.draftLeagues[leagueID]
		return v, ok
	})
}

func (p *Provider) FetchDraftBootstrap(ctx context.Context) (usecase.ExternalDraftBootstrap, error) {
	return lookup(ctx, p, usecase.CallBootstrap, "/bootstrap-static", func() (usecase.ExternalDraftBootstrap, bool) {
		return p.bootstrap, true
	})
}

func (p *Provider) FetchDraftEntryPublic(ctx context.Context, entryID int64) (usecase.ExternalDraftEntryPublic, error) {
	path := fmt.Sprintf("/entry/%d/public", entryID)
	return lookup(ctx, p, usecase.CallEntryPublic, path, func() (usecase.ExternalDraftEntryPublic, bool) {
		v, ok := p.publics[entryID]
		return v, ok
	})
}

func (p *Provider) FetchDraftEntryEvent(ctx context.Context, entryID int64, round int) (usecase.ExternalDraftEntryEvent, error) {
	path := fmt.Sprintf("/entry/%d/event/%d", entryID, round)
	return lookup(ctx, p, usecase.CallEntryEvent, path, func() (usecase.ExternalDraftEntryEvent, bool) {
		v, ok := p.events[eventKey{entryID: entryID, round: round}]
		return v, ok
	})
}

func (p *Provider) FetchDraftEntryHistory(ctx context.Context, entryID int64) (usecase.ExternalDraftEntryHistory, error) {
	path := fmt.Sprintf("/entry/%d/history", entryID)
	return lookup(ctx, p, usecase.CallEntryHistory, path, func() (usecase.ExternalDraftEntryHistory, bool) {
		v, ok := p.histories[entryID]
		return v, ok
	})
}

func (p *Provider) FetchClassicEntry(ctx context.Context, entryID int64) (usecase.ExternalClassicEntry, error) {
	path := fmt.Sprintf("/entry/%d/", entryID)
	return lookup(ctx, p, usecase.CallClassicEntry, path, func() (usecase.ExternalClassicEntry, bool) {
		v, ok := p.classicEntries[entryID]
		return v, ok
	})
}

func (p *Provider) FetchClassicEntryHistory(ctx context.Context, entryID int64) (usecase.ExternalClassicHistory, error) {
	path := fmt.Sprintf("/entry/%d/history/", entryID)
	return lookup(ctx, p, usecase.CallClassicHistory, path, func() (usecase.ExternalClassicHistory, bool) {
		v, ok := p.classicHistories[entryID]
		return v, ok
	})
}

func (p *Provider) FetchClassicStandings(ctx context.Context, leagueID int64) (usecase.ExternalClassicStandings, error) {
	path := fmt.Sprintf("/leagues-classic/%d/standings/", leagueID)
	return lookup(ctx, p, usecase.CallClassicStandings, path, func() (usecase.ExternalClassicStandings, bool) {
		v, ok := p.classicStandings[leagueID]
		return v, ok
	})
}

// FetchDraftRaw serves the draft paths used by the probe as encoded JSON.
func (p *Provider) FetchDraftRaw(ctx context.Context, call, path string) (usecase.ExternalRawPayload, error) {
	body, err := lookup(ctx, p, call, path, func() (any, bool) {
		var id int64
		switch {
		case path == "/bootstrap-static":
			return p.bootstrap, true
		case scan(path, "/league/%d/details", &id):
			v, ok := p.draftLeagues[id]
			return v, ok
		case scan(path, "/entry/%d/squad", &id):
			v, ok := p.events[eventKey{entryID: id, round: p.publics[id].Entry.CurrentEvent}]
			return v, ok
		default:
			return nil, false
		}
	})
	if err != nil {
		return usecase.ExternalRawPayload{}, err
	}

	raw, err := sonic.Marshal(body)
	if err != nil {
		return usecase.ExternalRawPayload{}, &usecase.UpstreamError{Call: call, URL: baseURL + path, Err: err}
	}
	return usecase.ExternalRawPayload{URL: baseURL + path, StatusCode: http.StatusOK, Body: raw}, nil
}

func lookup[T any](ctx context.Context, p *Provider, call, path string, get func() (T, bool)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, &usecase.UpstreamError{Call: call, URL: baseURL + path, Err: err}
	}

	p.mu.Lock()
	p.calls[call]++
	failure := p.failures[call]
	p.mu.Unlock()
	if failure != nil {
		return zero, &usecase.UpstreamError{Call: call, URL: baseURL + path, StatusCode: http.StatusServiceUnavailable, Err: failure}
	}

	p.mu.RLock()
	v, ok := get()
	p.mu.RUnlock()
	if !ok {
		return zero, &usecase.UpstreamError{Call: call, URL: baseURL + path, StatusCode: http.StatusNotFound}
	}
	return v, nil
}

func scan(path, format string, id *int64) bool {
	var tail string
	n, _ := fmt.Sscanf(path+" end", format+" %s", id, &tail)
	return n == 2 && tail == "end"
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
