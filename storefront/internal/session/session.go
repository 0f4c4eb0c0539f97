package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Astemirdum/car-rental-storefront/pkg/kvstore"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Keys under which the session is persisted.
const (
	UserKey  = "user"
	TokenKey = "token"
)

// Holder is the signed-in user of this storefront. The token is trusted until
// the backend rejects it.
type Holder struct {
	mu      sync.RWMutex
	session *model.Session

	auth  AuthAPI
	store kvstore.Store
	log   *zap.Logger
}

func New(auth AuthAPI, store kvstore.Store, log *zap.Logger) *Holder {
	return &Holder{
		auth:  auth,
		store: store,
		log:   log.Named("session"),
	}
}

// Rehydrate loads a persisted session. Nothing stored is not an error.
func (h *Holder) Rehydrate(ctx context.Context) error {
	rawUser, err := h.load(ctx, UserKey)
	if err != nil {
		return err
	}
	token, err := h.load(ctx, TokenKey)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.session = nil
	if rawUser == "" {
		return nil
	}
	var user model.UserData
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		h.log.Warn("stored user is malformed, staying signed out", zap.Error(err))
		return nil
	}
	h.session = &model.Session{User: user, Token: token}
	h.log.Debug("session rehydrated", zap.String("email", user.Email))
	return nil
}

func (h *Holder) load(ctx context.Context, key string) (string, error) {
	v, err := h.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return "", nil
		}
		return "", errors.Wrapf(err, "load %s", key)
	}
	return v, nil
}

func (h *Holder) Login(ctx context.Context, email, password string) (model.UserData, error) {
	resp, err := h.auth.Login(ctx, email, password)
	if err != nil {
		return model.UserData{}, err
	}
	h.signIn(ctx, resp)
	return resp.User, nil
}

func (h *Holder) Register(ctx context.Context, name, email, password string) (model.UserData, error) {
	resp, err := h.auth.Register(ctx, name, email, password)
	if err != nil {
		return model.UserData{}, err
	}
	h.signIn(ctx, resp)
	return resp.User, nil
}

func (h *Holder) signIn(ctx context.Context, resp model.LoginResponse) {
	h.mu.Lock()
	h.session = &model.Session{User: resp.User, Token: resp.Token}
	h.mu.Unlock()

	// A failed write keeps the in-memory session for this process only.
	if err := h.persist(ctx, resp); err != nil {
		h.log.Warn("persist session", zap.Error(err))
	}
}

func (h *Holder) persist(ctx context.Context, resp model.LoginResponse) error {
	user, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}
	if err := h.store.Set(ctx, UserKey, string(user)); err != nil {
		return errors.Wrap(err, "store user")
	}
	if err := h.store.Set(ctx, TokenKey, resp.Token); err != nil {
		return errors.Wrap(err, "store token")
	}
	return nil
}

// Logout forgets the session in memory and in the store. Calling it while
// signed out is a no-op apart from the store deletes.
func (h *Holder) Logout(ctx context.Context) error {
	h.mu.Lock()
	h.session = nil
	h.mu.Unlock()

	return multierr.Append(
		h.store.Delete(ctx, UserKey),
		h.store.Delete(ctx, TokenKey),
	)
}

func (h *Holder) Current() (model.Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.session == nil {
		return model.Session{}, false
	}
	return *h.session, true
}

func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.session == nil {
		return ""
	}
	return h.session.Token
}
