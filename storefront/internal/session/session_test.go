package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Astemirdum/car-rental-storefront/pkg/kvstore"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/errs"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/session"
	mock_session "github.com/Astemirdum/car-rental-storefront/storefront/internal/session/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var alice = model.LoginResponse{
	Token: "t1",
	User:  model.UserData{ID: "u1", Email: "a@x.io", Name: "Alice"},
}

func newStore(t *testing.T) kvstore.Store {
	t.Helper()
	cfg := kvstore.Config{
		Driver: kvstore.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "storefront.db"),
	}
	store, err := kvstore.New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestHolder_LoginRehydrateLogout(t *testing.T) {
	ctx := context.Background()
	c := gomock.NewController(t)
	defer c.Finish()

	api := mock_session.NewMockAuthAPI(c)
	api.EXPECT().Login(gomock.Any(), "a@x.io", "pw").Return(alice, nil)

	store := newStore(t)
	h := session.New(api, store, zap.NewNop())

	user, err := h.Login(ctx, "a@x.io", "pw")
	require.NoError(t, err)
	require.Equal(t, alice.User, user)
	require.Equal(t, "t1", h.Token())

	token, err := store.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	require.Equal(t, "t1", token)

	// a fresh holder over the same store sees the persisted session
	restored := session.New(api, store, zap.NewNop())
	require.NoError(t, restored.Rehydrate(ctx))
	s, ok := restored.Current()
	require.True(t, ok)
	require.Equal(t, alice.User, s.User)
	require.Equal(t, "t1", s.Token)

	require.NoError(t, restored.Logout(ctx))
	_, ok = restored.Current()
	require.False(t, ok)
	require.Empty(t, restored.Token())

	again := session.New(api, store, zap.NewNop())
	require.NoError(t, again.Rehydrate(ctx))
	_, ok = again.Current()
	require.False(t, ok)

	// logout twice is fine
	require.NoError(t, again.Logout(ctx))
}

func TestHolder_Register(t *testing.T) {
	ctx := context.Background()
	c := gomock.NewController(t)
	defer c.Finish()

	api := mock_session.NewMockAuthAPI(c)
	api.EXPECT().Register(gomock.Any(), "Alice", "a@x.io", "pw").Return(alice, nil)

	h := session.New(api, newStore(t), zap.NewNop())
	user, err := h.Register(ctx, "Alice", "a@x.io", "pw")
	require.NoError(t, err)
	require.Equal(t, "Alice", user.Name)

	s, ok := h.Current()
	require.True(t, ok)
	require.Equal(t, "t1", s.Token)
}

func TestHolder_FailedLoginKeepsState(t *testing.T) {
	ctx := context.Background()
	c := gomock.NewController(t)
	defer c.Finish()

	api := mock_session.NewMockAuthAPI(c)
	gomock.InOrder(
		api.EXPECT().Login(gomock.Any(), "a@x.io", "pw").Return(alice, nil),
		api.EXPECT().Login(gomock.Any(), "b@x.io", "bad").
			Return(model.LoginResponse{}, &errs.APIError{Status: 401, Message: "Invalid credentials"}),
	)

	store := newStore(t)
	h := session.New(api, store, zap.NewNop())
	_, err := h.Login(ctx, "a@x.io", "pw")
	require.NoError(t, err)

	_, err = h.Login(ctx, "b@x.io", "bad")
	var apiErr *errs.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "Invalid credentials", apiErr.Message)

	s, ok := h.Current()
	require.True(t, ok)
	require.Equal(t, alice.User, s.User)
	token, err := store.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	require.Equal(t, "t1", token)
}

func TestHolder_RehydrateEmptyStore(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	h := session.New(mock_session.NewMockAuthAPI(c), newStore(t), zap.NewNop())
	require.NoError(t, h.Rehydrate(context.Background()))
	_, ok := h.Current()
	require.False(t, ok)
}

func TestHolder_RehydrateMalformedUser(t *testing.T) {
	ctx := context.Background()
	c := gomock.NewController(t)
	defer c.Finish()

	store := newStore(t)
	require.NoError(t, store.Set(ctx, session.UserKey, "{not json"))
	require.NoError(t, store.Set(ctx, session.TokenKey, "t1"))

	h := session.New(mock_session.NewMockAuthAPI(c), store, zap.NewNop())
	require.NoError(t, h.Rehydrate(ctx))
	_, ok := h.Current()
	require.False(t, ok)
}
