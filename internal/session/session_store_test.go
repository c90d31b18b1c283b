package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/session"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	sess := session.Session{
		ID:        "sid-1",
		UserID:    "user-1",
		Name:      "System Administrator",
		Email:     "admin@payroll.com",
		Role:      "admin",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	payload, _ := json.Marshal(sess)

	t.Run("save sets key with ttl", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := session.NewRedisStore(rdb)

		mock.ExpectSet(session.Key("sid-1"), payload, time.Hour).SetVal("OK")

		assert.NoError(t, store.Save(ctx, sess, time.Hour))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get decodes session", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := session.NewRedisStore(rdb)

		mock.ExpectGet(session.Key("sid-1")).SetVal(string(payload))

		got, err := store.Get(ctx, "sid-1")
		assert.NoError(t, err)
		assert.Equal(t, sess, *got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key maps to ErrSessionNotFound", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := session.NewRedisStore(rdb)

		mock.ExpectGet(session.Key("nope")).RedisNil()

		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := session.NewRedisStore(rdb)

		mock.ExpectGet(session.Key("sid-1")).SetErr(errors.New("conn refused"))

		_, err := store.Get(ctx, "sid-1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("delete removes key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := session.NewRedisStore(rdb)

		mock.ExpectDel(session.Key("sid-1")).SetVal(1)

		assert.NoError(t, store.Delete(ctx, "sid-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
