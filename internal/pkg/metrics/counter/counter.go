package counter

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const authOutcomesKey = "auth:counters:outcomes"

// Counters keeps authentication outcome counts in a Redis hash so that all
// storefront instances share them. A nil *Counters, or one without a client,
// counts nothing.
type Counters struct {
	rdb *redis.Client
	key string
}

func New(rdb *redis.Client) *Counters {
	return &Counters{rdb: rdb, key: authOutcomesKey}
}

// Entry is one counter, named "<operation>:<outcome>".
type Entry struct {
	Name  string
	Count int64
}

// AddAuthOutcome increments the counter of op ("login", "register", "verify")
// for outcome ("success" or a failure kind).
func (c *Counters) AddAuthOutcome(ctx context.Context, op, outcome string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.HIncrBy(ctx, c.key, op+":"+outcome, 1).Err()
}

// Entries returns all counters sorted by name.
func (c *Counters) Entries(ctx context.Context) ([]Entry, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}

	data, err := c.rdb.HGetAll(ctx, c.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(data))
	for k, v := range data {
		n, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil || n == 0 {
			continue
		}
		entries = append(entries, Entry{Name: k, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Total sums the counters of op.
func Total(entries []Entry, op string) int64 {
	var total int64
	for _, e := range entries {
		if strings.HasPrefix(e.Name, op+":") {
			total += e.Count
		}
	}
	return total
}
