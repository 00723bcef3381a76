package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/v4health/clinic-api/internal/core/domain"
)

const (
	claimTTL            = 30 * time.Second
	claimReleaseTimeout = 2 * time.Second
)

// releaseScript deletes a claim only while it still holds our token, so an
// expired claim re-taken by another request is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RegistrationClaims marks unique keys as in-flight while a registration runs.
// Key format: registration:<kind>:username:<username> and
// registration:<kind>:email:<email>.
type RegistrationClaims struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRegistrationClaims(client redis.Cmdable) *RegistrationClaims {
	return &RegistrationClaims{client: client, ttl: claimTTL}
}

// Claim takes every key of the submission or none of them.
func (c *RegistrationClaims) Claim(ctx context.Context, kind domain.Kind, key domain.UniqueKey) (func(), bool, error) {
	token := uuid.NewString()
	var held []string

	release := func() {
		if len(held) == 0 {
			return
		}
		// the request context may already be done on this path
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), claimReleaseTimeout)
		defer cancel()
		for _, k := range held {
			_ = releaseScript.Run(rctx, c.client, []string{k}, token).Err()
		}
	}

	for _, k := range claimKeys(kind, key) {
		ok, err := c.client.SetNX(ctx, k, token, c.ttl).Result()
		if err != nil {
			release()
			return nil, false, fmt.Errorf("claim %s: %w", k, err)
		}
		if !ok {
			release()
			return nil, false, nil
		}
		held = append(held, k)
	}
	return release, true, nil
}

func claimKeys(kind domain.Kind, key domain.UniqueKey) []string {
	keys := []string{fmt.Sprintf("registration:%s:username:%s", kind, key.Username)}
	if key.Email != "" {
		keys = append(keys, fmt.Sprintf("registration:%s:email:%s", kind, strings.ToLower(key.Email)))
	}
	return keys
}
