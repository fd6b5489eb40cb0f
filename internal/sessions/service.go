package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/skb-upsell-backend/internal/presets"
	"github.com/angelmondragon/skb-upsell-backend/internal/quotes"
	"github.com/angelmondragon/skb-upsell-backend/internal/selection"
	"github.com/angelmondragon/skb-upsell-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/skb-upsell-backend/pkg/errors"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
	"github.com/angelmondragon/skb-upsell-backend/pkg/metrics"
	pkgredis "github.com/angelmondragon/skb-upsell-backend/pkg/redis"
	"github.com/google/uuid"
)

const maxCreateAttempts = 3

type kvStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) (int64, error)
	QuoteSessionKey(sessionID string) string
}

// Session is one agent's in-progress proposal.
type Session struct {
	ID        string              `json:"id"`
	Selection selection.Selection `json:"selection"`
	QuotedFee int                 `json:"quoted_fee"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	ExpiresAt time.Time           `json:"expires_at"`
}

// View pairs a session with its freshly computed quote.
type View struct {
	Session Session       `json:"session"`
	Result  quotes.Result `json:"result"`
}

// CreateInput seeds a new session. A preset wins over a family.
type CreateInput struct {
	Preset    *enums.Preset
	Family    *enums.Family
	QuotedFee int
}

// Service manages quote sessions.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*View, error)
	Get(ctx context.Context, id string) (*View, error)
	Edit(ctx context.Context, id string, edit Edit) (*View, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store   kvStore
	quotes  quotes.Service
	ttl     time.Duration
	logg    *logger.Logger
	metrics *metrics.QuoteMetrics
	now     func() time.Time
	newID   func() string
}

// NewService builds a session service backed by store.
func NewService(store kvStore, quoteSvc quotes.Service, ttl time.Duration, logg *logger.Logger, m *metrics.QuoteMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("session store required")
	}
	if quoteSvc == nil {
		return nil, fmt.Errorf("quote service required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		store:   store,
		quotes:  quoteSvc,
		ttl:     ttl,
		logg:    logg,
		metrics: m,
		now:     time.Now,
		newID:   uuid.NewString,
	}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (view *View, err error) {
	defer func() { s.metrics.IncSessionOp("create", err) }()

	if input.QuotedFee < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quoted fee must be zero or greater")
	}

	c := s.quotes.Catalog()
	sel := selection.New(c)
	if input.Family != nil {
		if !input.Family.IsValid() {
			return nil, pkgerrors.Newf(pkgerrors.CodeValidation, "invalid family %q", *input.Family)
		}
		sel = sel.SetFamily(c, *input.Family)
	}
	if input.Preset != nil {
		applied, applyErr := presets.Apply(c, sel, *input.Preset)
		if applyErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, applyErr, "invalid preset")
		}
		sel = applied
	}

	now := s.now().UTC()
	sess := Session{
		Selection: sel,
		QuotedFee: input.QuotedFee,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		sess.ID = s.newID()
		payload, encErr := json.Marshal(sess)
		if encErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, encErr, "encode session")
		}
		created, setErr := s.store.SetNX(ctx, s.store.QuoteSessionKey(sess.ID), payload, s.ttl)
		if setErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, setErr, "store session")
		}
		if created {
			s.logg.Info(s.logg.WithSessionID(ctx, sess.ID), "quote session created")
			return s.view(ctx, sess), nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "could not allocate session id")
}

func (s *service) Get(ctx context.Context, id string) (view *View, err error) {
	defer func() { s.metrics.IncSessionOp("get", err) }()

	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *sess), nil
}

func (s *service) Edit(ctx context.Context, id string, edit Edit) (view *View, err error) {
	defer func() { s.metrics.IncSessionOp("edit", err) }()

	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	sel, fee, err := edit.Apply(s.quotes.Catalog(), sess.Selection, sess.QuotedFee)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	sess.Selection = sel
	sess.QuotedFee = fee
	sess.UpdatedAt = now
	sess.ExpiresAt = now.Add(s.ttl)

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session")
	}
	if err := s.store.Set(ctx, s.store.QuoteSessionKey(sess.ID), payload, s.ttl); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store session")
	}
	return s.view(ctx, *sess), nil
}

func (s *service) Delete(ctx context.Context, id string) (err error) {
	defer func() { s.metrics.IncSessionOp("delete", err) }()

	id, err = normalizeID(id)
	if err != nil {
		return err
	}
	removed, err := s.store.Del(ctx, s.store.QuoteSessionKey(id))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete session")
	}
	if removed == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}
	s.logg.Info(s.logg.WithSessionID(ctx, id), "quote session ended")
	return nil
}

func (s *service) load(ctx context.Context, id string) (*Session, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	raw, err := s.store.Get(ctx, s.store.QuoteSessionKey(id))
	if err != nil {
		if pkgredis.IsMiss(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load session")
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode session")
	}
	return &sess, nil
}

func (s *service) view(ctx context.Context, sess Session) *View {
	ctx = s.logg.WithSessionID(ctx, sess.ID)
	result := s.quotes.Evaluate(ctx, sess.Selection, sess.QuotedFee)
	sess.Selection = result.Selection
	return &View{Session: sess, Result: result}
}

func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "session not found")
	}
	return id, nil
}
