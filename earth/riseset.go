package earth

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/nathan-osman/go-sunrise"
)

// RiseSet holds one day's sunrise and sunset instants in UTC.
type RiseSet struct {
	Rise time.Time
	Set  time.Time
}

// RiseSetProvider yields sunrise/sunset times for a location and date.
// Implementations may reach out to a network service; errors are part of
// the contract.
type RiseSetProvider interface {
	RiseSet(lat, lon float64, date time.Time) (RiseSet, error)
}

// LocalProvider computes rise/set times locally, without any network call.
type LocalProvider struct{}

func (LocalProvider) RiseSet(lat, lon float64, date time.Time) (RiseSet, error) {
	date = date.UTC()
	rise, set := sunrise.SunriseSunset(lat, lon, date.Year(), date.Month(), date.Day())
	if rise.IsZero() || set.IsZero() {
		return RiseSet{}, fmt.Errorf("no sunrise/sunset at %.4f,%.4f on %s (polar day or night)",
			lat, lon, date.Format("2006-01-02"))
	}
	return RiseSet{Rise: rise, Set: set}, nil
}

// CachedProvider memoizes successful lookups of an underlying provider in a
// bounded LRU keyed by (lat, lon, UTC date). Failed lookups are returned but
// never cached, so a transient error cannot poison later requests.
type CachedProvider struct {
	next  RiseSetProvider
	cache *lru.Cache
}

// NewCachedProvider wraps next with an LRU of the given capacity.
func NewCachedProvider(next RiseSetProvider, size int) (*CachedProvider, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &CachedProvider{next: next, cache: cache}, nil
}

type riseSetKey struct {
	lat, lon float64
	day      string
}

func (p *CachedProvider) RiseSet(lat, lon float64, date time.Time) (RiseSet, error) {
	key := riseSetKey{lat: lat, lon: lon, day: date.UTC().Format("2006-01-02")}
	if v, ok := p.cache.Get(key); ok {
		return v.(RiseSet), nil
	}

	rs, err := p.next.RiseSet(lat, lon, date)
	if err != nil {
		return RiseSet{}, err
	}
	p.cache.Add(key, rs)
	return rs, nil
}
