// Package profile persists the player registry and the per-player stat cache.
//
// Directory layout:
//
//	<dir>/players.json                  registered players (tag, platform, region)
//	<dir>/profiles/data_<tag>.json      cached stat payload with fetch metadata
//
// Cached payloads older than StaleAfter are considered stale and trigger a
// re-fetch through the injected Fetcher; fresher entries are served without
// touching the network.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Clovis5119/overwatch-stats/src/owapi"
)

// StaleAfter is the cache lifetime; data fetched longer ago is re-fetched.
const StaleAfter = 24 * time.Hour

// SchemaVersion marks the cache entry layout. Bump on breaking changes to
// field names/types so old files are refreshed rather than misread.
const SchemaVersion = 1

const (
	playersFile = "players.json"
	profilesDir = "profiles"
)

var (
	// ErrPrivateProfile is returned when a fetched profile is set to private
	// and therefore has no comparable stats.
	ErrPrivateProfile = errors.New("profile is private")
	// ErrUnknownPlayer is returned for tags that were never registered.
	ErrUnknownPlayer = errors.New("player not registered")
)

// PlayerInfo is the identity needed to perform an API call for a player.
type PlayerInfo struct {
	Platform string `json:"platform"`
	Region   string `json:"region"`
}

// Meta records when a cache entry was fetched.
type Meta struct {
	TimestampUTC  string `json:"timestamp_utc"`
	FetchedUnix   int64  `json:"fetched_unix"`
	Tag           string `json:"tag,omitempty"`
	SchemaVersion int    `json:"schema_version"`
}

// CacheEntry is the on-disk envelope for one player's cached stats.
type CacheEntry struct {
	Meta  *Meta               `json:"meta"`
	Stats *owapi.StatsPayload `json:"stats"`
}

// FetchedAt returns the entry's fetch time, zero when metadata is missing.
func (e *CacheEntry) FetchedAt() time.Time {
	if e == nil || e.Meta == nil || e.Meta.FetchedUnix == 0 {
		return time.Time{}
	}
	return time.Unix(e.Meta.FetchedUnix, 0)
}

// Fetcher performs the network lookup; *owapi.Client satisfies it.
type Fetcher interface {
	FetchStats(ctx context.Context, platform, region, tag string) (*owapi.StatsPayload, error)
}

// Store binds the registry, the cache directory and a fetcher. The UI runs
// each fetch on its own goroutine, so the maps are guarded by a mutex; the
// lock is not held across network calls.
type Store struct {
	dir     string
	fetcher Fetcher

	mu      sync.Mutex
	players map[string]PlayerInfo
	cache   map[string]*CacheEntry

	now func() time.Time // swapped in tests
}

// NewStore opens (creating if needed) the save directory and loads the
// player registry.
func NewStore(dir string, f Fetcher) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, profilesDir), 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	s := &Store{
		dir:     dir,
		fetcher: f,
		players: map[string]PlayerInfo{},
		cache:   map[string]*CacheEntry{},
		now:     time.Now,
	}
	if err := s.loadPlayers(); err != nil {
		return nil, err
	}
	return s, nil
}

// Players returns the registered tags, sorted.
func (s *Store) Players() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.players))
	for tag := range s.players {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Player returns the registered identity for a tag.
func (s *Store) Player(tag string) (PlayerInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := s.players[tag]
	return info, ok
}

// AddPlayer registers a player and performs the initial fetch (or loads a
// fresh-enough cache entry left over from a previous run). Private profiles
// are rejected and not registered.
func (s *Store) AddPlayer(ctx context.Context, tag, platform, region string) (*owapi.StatsPayload, error) {
	info := PlayerInfo{
		Platform: strings.ToLower(strings.TrimSpace(platform)),
		Region:   strings.ToLower(strings.TrimSpace(region)),
	}
	s.mu.Lock()
	prev, existed := s.players[tag]
	s.players[tag] = info
	s.mu.Unlock()

	// a re-add of a known tag must not lose the old identity on failure
	rollback := func(dropCache bool) {
		s.mu.Lock()
		if existed {
			s.players[tag] = prev
		} else {
			delete(s.players, tag)
		}
		if dropCache && !existed {
			delete(s.cache, tag)
		}
		s.mu.Unlock()
	}

	stats, err := s.GetOrRefresh(ctx, tag)
	if err != nil {
		rollback(false)
		return nil, err
	}
	if stats.Private {
		rollback(true)
		return nil, fmt.Errorf("%s: %w", tag, ErrPrivateProfile)
	}
	if err := s.SavePlayers(); err != nil {
		Warnf("save players after add: %v", err)
	}
	return stats, nil
}

// RemovePlayer drops a player from the registry, the in-memory cache and
// the disk cache.
func (s *Store) RemovePlayer(tag string) error {
	s.mu.Lock()
	delete(s.players, tag)
	delete(s.cache, tag)
	s.mu.Unlock()
	if err := os.Remove(s.entryPath(tag)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cache for %s: %w", tag, err)
	}
	return s.SavePlayers()
}

// GetOrRefresh returns a player's stat payload, fetching fresh data when no
// cached entry exists or the cached one is StaleAfter old or older. A fetch
// failure is surfaced to the caller and leaves any stale entry untouched.
func (s *Store) GetOrRefresh(ctx context.Context, tag string) (*owapi.StatsPayload, error) {
	s.mu.Lock()
	info, ok := s.players[tag]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%s: %w", tag, ErrUnknownPlayer)
	}

	entry := s.cache[tag]
	if entry == nil {
		if loaded, err := s.loadEntry(tag); err == nil {
			entry = loaded
			s.cache[tag] = entry
		} else if !errors.Is(err, os.ErrNotExist) {
			Warnf("[%s] unreadable cache entry, will refetch: %v", tag, err)
		}
	}
	if entry != nil && entry.Stats != nil {
		age := s.now().Sub(entry.FetchedAt())
		if age < StaleAfter {
			Debugf("[%s] cache hit (age %s)", tag, age.Round(time.Minute))
			stats := entry.Stats
			s.mu.Unlock()
			return stats, nil
		}
		Infof("[%s] cache stale (age %s), refetching", tag, age.Round(time.Hour))
	} else {
		Infof("[%s] no cached data, fetching", tag)
	}
	s.mu.Unlock()

	defer TimeTrack(s.now(), "fetch "+tag)
	stats, err := s.fetcher.FetchStats(ctx, info.Platform, info.Region, tag)
	if err != nil {
		return nil, err
	}
	now := s.now()
	fresh := &CacheEntry{
		Meta: &Meta{
			TimestampUTC:  now.UTC().Format(time.RFC3339),
			FetchedUnix:   now.Unix(),
			Tag:           tag,
			SchemaVersion: SchemaVersion,
		},
		Stats: stats,
	}
	s.mu.Lock()
	s.cache[tag] = fresh
	if err := s.writeEntry(tag, fresh); err != nil {
		// The fetch succeeded; a cache write failure only costs us a
		// re-fetch next run.
		Warnf("[%s] persist cache entry: %v", tag, err)
	}
	s.mu.Unlock()
	return stats, nil
}

// Cached returns the in-memory entry for a tag without touching disk or
// network; chart building reads payloads through this.
func (s *Store) Cached(tag string) (*CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.cache[tag]
	return e, ok
}

// LoadCached returns the cache entry for a tag, reading it from disk when it
// is not in memory yet. Never fetches.
func (s *Store) LoadCached(tag string) (*CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.cache[tag]; ok {
		return e, true
	}
	e, err := s.loadEntry(tag)
	if err != nil {
		return nil, false
	}
	s.cache[tag] = e
	return e, true
}

// SavePlayers writes the registry so players survive a relaunch.
func (s *Store) SavePlayers() error {
	s.mu.Lock()
	b, err := json.MarshalIndent(s.players, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("marshal players: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, playersFile), b, 0o644); err != nil {
		return fmt.Errorf("write players file: %w", err)
	}
	return nil
}

func (s *Store) loadPlayers() error {
	b, err := os.ReadFile(filepath.Join(s.dir, playersFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read players file: %w", err)
	}
	if err := json.Unmarshal(b, &s.players); err != nil {
		return fmt.Errorf("parse players file: %w", err)
	}
	return nil
}

func (s *Store) entryPath(tag string) string {
	return filepath.Join(s.dir, profilesDir, "data_"+sanitizeTag(tag)+".json")
}

func (s *Store) loadEntry(tag string) (*CacheEntry, error) {
	b, err := os.ReadFile(s.entryPath(tag))
	if err != nil {
		return nil, err
	}
	var e CacheEntry
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, fmt.Errorf("parse cache entry: %w", err)
	}
	if e.Meta == nil || e.Meta.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("cache entry schema mismatch")
	}
	return &e, nil
}

func (s *Store) writeEntry(tag string, e *CacheEntry) error {
	f, err := os.Create(s.entryPath(tag))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// sanitizeTag makes a battletag safe as a filename ('#' and separators
// become '-').
func sanitizeTag(tag string) string {
	r := strings.NewReplacer("#", "-", "/", "-", "\\", "-", "..", "-")
	return r.Replace(tag)
}
