package auth

import (
	"context"
	"testing"

	"github.com/freshbasket/freshbasket-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (Service, *Store) {
	store := NewStore(storage.NewMemory())
	return NewService(store, []byte("test-secret"), 0), store
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	sess, err := svc.Login(ctx, Credentials{Email: "test@test.com", Password: "123456"})
	require.NoError(t, err)

	assert.True(t, sess.IsAuthenticated)
	require.NotNil(t, sess.User)
	assert.Equal(t, "Dexter", sess.User.Name)
	assert.NotEmpty(t, sess.Token)

	valid, err := svc.ValidateToken(ctx, sess.Token)
	require.NoError(t, err)
	assert.True(t, valid)

	assert.True(t, store.Session().IsAuthenticated)
}

func TestLoginBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	for _, creds := range []Credentials{
		{Email: "test@test.com", Password: "wrong"},
		{Email: "nobody@test.com", Password: "123456"},
	} {
		_, err := svc.Login(ctx, creds)
		assert.EqualError(t, err, "invalid email or password")
	}
	assert.False(t, store.Session().IsAuthenticated)
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	_, err := svc.Login(ctx, Credentials{Email: "test@test.com", Password: "123456"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	sess := store.Session()
	assert.False(t, sess.IsAuthenticated)
	assert.Nil(t, sess.User)
	assert.Empty(t, sess.Token)
}

func TestValidateTokenGarbage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	valid, err := svc.ValidateToken(ctx, "not-a-jwt")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	sess, err := svc.Login(ctx, Credentials{Email: "test@test.com", Password: "123456"})
	require.NoError(t, err)

	foreign := NewService(NewStore(storage.NewMemory()), []byte("different-secret"), 0)
	valid, err := foreign.ValidateToken(ctx, sess.Token)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSessionPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemory()

	store := NewStore(backend)
	svc := NewService(store, []byte("test-secret"), 0)
	_, err := svc.Login(ctx, Credentials{Email: "test@test.com", Password: "123456"})
	require.NoError(t, err)

	restored := NewStore(backend)
	require.NoError(t, restored.Load(ctx))
	assert.True(t, restored.Session().IsAuthenticated)
}
