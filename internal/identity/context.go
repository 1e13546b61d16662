// Package identity implements the identity context: it tracks the currently
// authenticated user, owns the persisted credential store, and notifies
// subscribers (the wallet engine) whenever the session changes.
package identity

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"walletbook/internal/config"
	apperrors "walletbook/internal/errors"
	"walletbook/internal/ident"
	"walletbook/internal/localstore"
	"walletbook/internal/logger"
	"walletbook/internal/models"
	"walletbook/internal/validator"
)

// registerInput carries validated registration fields.
type registerInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Context tracks the authenticated session. It is constructed once per
// process and passed by reference to whatever composes the presentation
// layer; there is no ambient global session.
type Context struct {
	store *localstore.Store
	cfg   *config.Config
	log   *zap.SugaredLogger

	user        *models.User
	subscribers []func(*models.User)
}

// NewContext creates an identity context over the given store. Call
// Restore afterwards (once subscribers are attached) to pick up a
// persisted session.
func NewContext(store *localstore.Store, cfg *config.Config) *Context {
	return &Context{
		store: store,
		cfg:   cfg,
		log:   logger.Named("identity"),
	}
}

// OnChange registers a subscriber invoked after every session transition
// with the new user, or nil after logout.
func (c *Context) OnChange(fn func(*models.User)) {
	c.subscribers = append(c.subscribers, fn)
}

// CurrentUser returns the authenticated user, or nil.
func (c *Context) CurrentUser() *models.User {
	return c.user
}

// Restore re-establishes a persisted session, if any. The password is not
// re-validated; a session exists when both the public user record and a
// verifiable session token are present. A corrupt record or an invalid
// token clears the persisted session instead of failing.
func (c *Context) Restore() {
	userJSON, haveUser, err := c.store.Get(localstore.KeySessionUser)
	if err != nil {
		c.log.Warnw("failed to read persisted session", "error", err)
		return
	}
	token, haveToken, err := c.store.Get(localstore.KeySessionToken)
	if err != nil {
		c.log.Warnw("failed to read persisted session token", "error", err)
		return
	}
	if !haveUser || !haveToken {
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		c.log.Warnw("corrupt persisted session record, clearing session", "error", err)
		c.clearSession()
		return
	}
	if _, err := validateSessionToken(token, c.cfg); err != nil {
		c.log.Infow("persisted session token no longer valid, clearing session", "user_id", user.ID)
		c.clearSession()
		return
	}

	c.user = &user
	c.notify()
}

// Login authenticates against the credential store and establishes a
// session. It fails with INVALID_CREDENTIALS when the email is unknown or
// the password does not match, leaving no partial session state behind.
func (c *Context) Login(email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	creds, err := c.loadCredentials()
	if err != nil {
		return nil, err
	}

	for _, cred := range creds {
		if cred.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		return c.establishSession(cred.Public())
	}
	return nil, apperrors.ErrInvalidCredentials
}

// Register creates a new credential record and establishes a session
// exactly as Login does. It fails with DUPLICATE_EMAIL when a credential
// with that email already exists.
func (c *Context) Register(email, password, name string) (*models.User, error) {
	email = normalizeEmail(email)
	if err := validator.Struct(registerInput{Email: email, Password: password}); err != nil {
		return nil, err
	}

	creds, err := c.loadCredentials()
	if err != nil {
		return nil, err
	}
	for _, cred := range creds {
		if cred.Email == email {
			return nil, apperrors.ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	cred := models.Credential{
		ID:           ident.New(ident.PrefixUser),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	creds = append(creds, cred)
	if err := c.saveCredentials(creds); err != nil {
		return nil, err
	}

	return c.establishSession(cred.Public())
}

// Logout clears the session unconditionally. It is idempotent; logging out
// twice is not an error.
func (c *Context) Logout() {
	c.clearSession()
	if c.user != nil {
		c.user = nil
		c.notify()
	}
}

// establishSession persists the public user record and a fresh session
// token, then makes the user current and notifies subscribers. Persisted
// session state is written synchronously before anyone is notified.
func (c *Context) establishSession(user models.User) (*models.User, error) {
	token, err := generateSessionToken(user, c.cfg)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if err := c.store.Set(localstore.KeySessionUser, string(userJSON)); err != nil {
		c.clearSession()
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if err := c.store.Set(localstore.KeySessionToken, token); err != nil {
		c.clearSession()
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}

	c.user = &user
	c.notify()
	return c.user, nil
}

func (c *Context) clearSession() {
	if err := c.store.Delete(localstore.KeySessionUser); err != nil {
		c.log.Warnw("failed to clear session user record", "error", err)
	}
	if err := c.store.Delete(localstore.KeySessionToken); err != nil {
		c.log.Warnw("failed to clear session token", "error", err)
	}
}

// loadCredentials reads the registered-credentials collection. A corrupt
// collection is treated as absent rather than propagated as a parse
// failure.
func (c *Context) loadCredentials() ([]models.Credential, error) {
	raw, ok, err := c.store.Get(localstore.KeyUsers)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if !ok {
		return nil, nil
	}

	var creds []models.Credential
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		c.log.Warnw("corrupt credential store, starting empty", "error", err)
		return nil, nil
	}
	return creds, nil
}

func (c *Context) saveCredentials(creds []models.Credential) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if err := c.store.Set(localstore.KeyUsers, string(raw)); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}

func (c *Context) notify() {
	for _, fn := range c.subscribers {
		fn(c.user)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
