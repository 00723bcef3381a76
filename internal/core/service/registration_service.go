package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/v4health/clinic-api/internal/core/domain"
	"github.com/v4health/clinic-api/internal/core/ports"
)

const (
	defaultClaimWait = 2 * time.Second
	claimPollEvery   = 25 * time.Millisecond
)

// Descriptor binds one principal kind to its identity store and its signer.
type Descriptor[P domain.Principal] struct {
	Kind   domain.Kind
	Repo   ports.PrincipalRepository[P]
	Tokens ports.TokenIssuer
}

// Registrar is the registration guard of one principal kind: it creates a
// principal only when no row shares its username (or email), then issues a
// token for it.
type Registrar[P domain.Principal] struct {
	kind      domain.Kind
	repo      ports.PrincipalRepository[P]
	tokens    ports.TokenIssuer
	hasher    ports.PasswordHasher
	claims    ports.RegistrationClaimer
	claimWait time.Duration
	log       zerolog.Logger
}

// NewRegistrar builds the guard for d.Kind. claims may be nil.
func NewRegistrar[P domain.Principal](
	d Descriptor[P],
	hasher ports.PasswordHasher,
	claims ports.RegistrationClaimer,
	log zerolog.Logger,
) *Registrar[P] {
	return &Registrar[P]{
		kind:      d.Kind,
		repo:      d.Repo,
		tokens:    d.Tokens,
		hasher:    hasher,
		claims:    claims,
		claimWait: defaultClaimWait,
		log:       log.With().Str("kind", d.Kind.String()).Logger(),
	}
}

// WithClaimWait bounds how long Register waits for another request's claim
// on the same key before going to the store anyway. Default 2s.
func (r *Registrar[P]) WithClaimWait(d time.Duration) *Registrar[P] {
	r.claimWait = d
	return r
}

// Register runs lookup, hash, insert and token issue strictly in that order.
//
// The lookup only produces the common-case Conflict; two requests racing on
// the same key can both pass it. The store's unique constraint catches the
// loser, whose insert error is turned into the same Conflict outcome.
func (r *Registrar[P]) Register(ctx context.Context, principal P, password string) (*ports.Registration[P], error) {
	key := principal.UniqueKey()
	if key.Username == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	if release := r.claim(ctx, key); release != nil {
		defer release()
	}

	existing, err := r.repo.FindByUniqueKey(ctx, key)
	if err != nil && !errors.Is(err, domain.ErrPrincipalNotFound) {
		r.log.Error().Err(err).Str("username", key.Username).Msg("principal lookup failed")
		return nil, domain.NewStorageError("find "+r.kind.String(), err)
	}
	if err == nil && existing != nil {
		r.log.Info().Str("username", key.Username).Int64("existing_id", existing.ID).Msg("registration rejected: principal exists")
		return nil, &domain.ConflictError{Kind: r.kind, Key: key, Existing: existing}
	}

	hash, err := r.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register %s: hash password: %w", r.kind, err)
	}
	principal.SetPasswordHash(hash)

	if _, err := r.repo.Insert(ctx, principal); err != nil {
		if errors.Is(err, domain.ErrDuplicatePrincipal) {
			return nil, r.conflictAfterInsert(ctx, key)
		}
		r.log.Error().Err(err).Str("username", key.Username).Msg("principal insert failed")
		return nil, domain.NewStorageError("insert "+r.kind.String(), err)
	}

	identity := principal.Identity()
	token, expiresAt, err := r.tokens.Issue(identity)
	if err != nil {
		r.log.Error().Err(err).Int64("id", identity.ID).Msg("principal stored but token issue failed")
		return nil, fmt.Errorf("register %s: %w", r.kind, err)
	}

	r.log.Info().Int64("id", identity.ID).Str("username", identity.Username).Msg("principal registered")

	return &ports.Registration[P]{Record: principal, Token: token, ExpiresAt: expiresAt}, nil
}

// claim serializes concurrent submissions of the same key. A claim held by
// another request is not a Conflict: that request may still fail, so the
// submission waits for it and then goes to the store, whose lookup and
// constraint decide. A nil release means no claim is held.
func (r *Registrar[P]) claim(ctx context.Context, key domain.UniqueKey) func() {
	if r.claims == nil {
		return nil
	}
	deadline := time.Now().Add(r.claimWait)
	for {
		release, ok, err := r.claims.Claim(ctx, r.kind, key)
		switch {
		case err != nil:
			r.log.Warn().Err(err).Str("username", key.Username).Msg("registration claim failed, continuing without it")
			return nil
		case ok:
			return release
		}

		if !time.Now().Before(deadline) {
			r.log.Info().Str("username", key.Username).Msg("registration still in flight elsewhere, deferring to the store")
			return nil
		}
		t := time.NewTimer(claimPollEvery)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil
		case <-t.C:
		}
	}
}

// conflictAfterInsert builds the Conflict for a row that slipped past the
// lookup and was rejected by the unique constraint. The colliding row is
// re-read so the caller still learns its identity; failing that, Existing
// stays nil.
func (r *Registrar[P]) conflictAfterInsert(ctx context.Context, key domain.UniqueKey) error {
	r.log.Warn().Str("username", key.Username).Msg("unique constraint rejected concurrent registration")

	conflict := &domain.ConflictError{Kind: r.kind, Key: key}
	if existing, err := r.repo.FindByUniqueKey(ctx, key); err == nil && existing != nil {
		conflict.Existing = existing
	}
	return conflict
}
