package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"client-scheduler/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	contactsKey  = "lookup:contacts"
	countriesKey = "lookup:countries"
	divisionsKey = "lookup:divisions:"
	usersKey     = "lookup:users"
)

// LookupCache decorates a LookupReadStore with a Redis JSON cache. Reference
// data changes rarely, so a short TTL keeps the lists fresh enough without a
// database round trip on every form load. Cache failures fall through to the
// database.
type LookupCache struct {
	inner  queries.LookupReadStore
	client *redis.Client
	ttl    time.Duration
}

func NewLookupCache(inner queries.LookupReadStore, client *redis.Client, ttl time.Duration) *LookupCache {
	return &LookupCache{inner: inner, client: client, ttl: ttl}
}

func (c *LookupCache) FindContacts(ctx context.Context) ([]*queries.ContactView, error) {
	return cached(ctx, c, contactsKey, c.inner.FindContacts)
}

func (c *LookupCache) FindCountries(ctx context.Context) ([]*queries.CountryView, error) {
	return cached(ctx, c, countriesKey, c.inner.FindCountries)
}

func (c *LookupCache) FindDivisionsByCountry(ctx context.Context, countryID uuid.UUID) ([]*queries.DivisionView, error) {
	return cached(ctx, c, divisionsKey+countryID.String(), func(ctx context.Context) ([]*queries.DivisionView, error) {
		return c.inner.FindDivisionsByCountry(ctx, countryID)
	})
}

func (c *LookupCache) FindUsers(ctx context.Context) ([]*queries.UserView, error) {
	return cached(ctx, c, usersKey, c.inner.FindUsers)
}

// DivisionExists backs a write-path validation and is never served stale.
func (c *LookupCache) DivisionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return c.inner.DivisionExists(ctx, id)
}

func cached[T any](ctx context.Context, c *LookupCache, key string, load func(ctx context.Context) ([]*T, error)) ([]*T, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var result []*T
		if jsonErr := json.Unmarshal(data, &result); jsonErr == nil {
			return result, nil
		}
		// Corrupt entry: treat as a miss and overwrite below.
	} else if err != redis.Nil {
		slog.Warn("lookup cache read failed", "key", key, "error", err.Error())
	}

	result, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(result); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			slog.Warn("lookup cache write failed", "key", key, "error", setErr.Error())
		}
	}

	return result, nil
}
