package redis

import (
	"context"
	"dentclinic-service/internal/app/models"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/exceptions"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SessionRepository stores the browser session slots as fields of one hash
// per session id and announces changes on a per-session channel.
type SessionRepository struct {
	client *redis.Client
	Log    *zap.Logger
}

func NewSessionRepository(client *redis.Client, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{client: client, Log: logger}
}

func sessionKey(sid string) string {
	return constvars.SessionKeyPrefix + sid
}

func eventsChannel(sid string) string {
	return constvars.SessionEventsKeyPrefix + sid
}

func (r *SessionRepository) ReadSlots(ctx context.Context, sid string) (map[string]string, error) {
	slots, err := r.client.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return slots, nil
}

// WriteIdentity sets currentUser and user in one MULTI. loginTime is written
// in the same transaction when given.
func (r *SessionRepository) WriteIdentity(ctx context.Context, sid string, identityJSON []byte, loginTime *time.Time) error {
	key := sessionKey(sid)
	keys := []string{constvars.SessionSlotCurrentUser, constvars.SessionSlotUser}
	values := []interface{}{
		constvars.SessionSlotCurrentUser, string(identityJSON),
		constvars.SessionSlotUser, string(identityJSON),
	}
	if loginTime != nil {
		keys = append(keys, constvars.SessionSlotLoginTime)
		values = append(values, constvars.SessionSlotLoginTime, formatLoginTime(*loginTime))
	}

	event, err := encodeEvent(models.SessionEvent{Type: models.SessionEventUpdated, Keys: keys})
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, values...)
		pipe.Expire(ctx, key, constvars.SessionKeyTTL)
		pipe.Publish(ctx, eventsChannel(sid), event)
		return nil
	})
	if err != nil {
		r.Log.Error("SessionRepository.WriteIdentity error running transaction",
			zap.String(constvars.LoggingSessionIDKey, sid),
			zap.Error(err),
		)
		return exceptions.ErrRedisTransaction(err)
	}
	return nil
}

func (r *SessionRepository) WriteLoginTime(ctx context.Context, sid string, loginTime time.Time) error {
	key := sessionKey(sid)
	event, err := encodeEvent(models.SessionEvent{Type: models.SessionEventUpdated, Keys: []string{constvars.SessionSlotLoginTime}})
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, constvars.SessionSlotLoginTime, formatLoginTime(loginTime))
		pipe.Expire(ctx, key, constvars.SessionKeyTTL)
		pipe.Publish(ctx, eventsChannel(sid), event)
		return nil
	})
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context, sid string, slots ...string) error {
	if len(slots) == 0 {
		return nil
	}
	event, err := encodeEvent(models.SessionEvent{Type: models.SessionEventCleared, Keys: slots})
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, sessionKey(sid), slots...)
		pipe.Publish(ctx, eventsChannel(sid), event)
		return nil
	})
	if err != nil {
		r.Log.Error("SessionRepository.Clear error running transaction",
			zap.String(constvars.LoggingSessionIDKey, sid),
			zap.Error(err),
		)
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

// Subscribe listens for slot changes of sid until the returned close func is
// called or ctx ends.
func (r *SessionRepository) Subscribe(ctx context.Context, sid string) (<-chan models.SessionEvent, func(), error) {
	pubsub := r.client.Subscribe(ctx, eventsChannel(sid))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, exceptions.ErrRedisSubscribe(err)
	}

	events := make(chan models.SessionEvent)
	go func() {
		defer close(events)
		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case message, ok := <-messages:
				if !ok {
					return
				}
				var event models.SessionEvent
				if err := json.Unmarshal([]byte(message.Payload), &event); err != nil {
					r.Log.Warn("SessionRepository.Subscribe dropping malformed event",
						zap.String(constvars.LoggingSessionIDKey, sid),
						zap.Error(err),
					)
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, func() { pubsub.Close() }, nil
}

func encodeEvent(event models.SessionEvent) (string, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}
	return string(payload), nil
}

func formatLoginTime(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
