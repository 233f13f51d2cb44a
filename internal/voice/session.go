package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/otoplaza/showroom-ai/internal/extract"
)

const defaultSessionTTL = 30 * time.Minute

// Session tracks one phone call's booking progress across webhook turns.
type Session struct {
	CallSID   string       `json:"call_sid"`
	Caller    string       `json:"caller"`
	Collected extract.Info `json:"collected"`
	History   []string     `json:"history"`
}

// SessionStore keeps call sessions in redis. Twilio retries webhook
// deliveries, so sessions live server-side rather than in the TwiML flow.
type SessionStore struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration, tracer trace.Tracer) *SessionStore {
	if rdb == nil {
		panic("voice: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if tracer == nil {
		tracer = otel.Tracer("showroom.internal.voice.sessions")
	}
	return &SessionStore{
		redis:  rdb,
		ttl:    ttl,
		tracer: tracer,
	}
}

// Load returns the session for a call, or nil when the call is new.
func (s *SessionStore) Load(ctx context.Context, callSID string) (*Session, error) {
	ctx, span := s.tracer.Start(ctx, "voice.load_session")
	defer span.End()

	data, err := s.redis.Get(ctx, sessionKey(callSID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("voice: failed to load session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("voice: failed to decode session: %w", err)
	}
	return &session, nil
}

// Save persists the session, refreshing its TTL.
func (s *SessionStore) Save(ctx context.Context, session *Session) error {
	ctx, span := s.tracer.Start(ctx, "voice.save_session")
	defer span.End()

	data, err := json.Marshal(session)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("voice: failed to marshal session: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(session.CallSID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("voice: failed to persist session: %w", err)
	}
	return nil
}

// Delete removes the session once the call has booked or ended.
func (s *SessionStore) Delete(ctx context.Context, callSID string) error {
	ctx, span := s.tracer.Start(ctx, "voice.delete_session")
	defer span.End()

	if err := s.redis.Del(ctx, sessionKey(callSID)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("voice: failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(callSID string) string {
	return fmt.Sprintf("voice_session:%s", callSID)
}
