package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Manager writes and reads cookies using a shared set of default attributes.
type Manager struct {
	defaults Options
}

// New creates a Manager. Defaults are Path "/", HttpOnly and SameSite=Lax;
// opts override them.
func New(opts ...Option) (*Manager, error) {
	defaults := applyOptions(Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, opts)

	// Browsers drop SameSite=None cookies that are not Secure.
	if defaults.SameSite == http.SameSiteNoneMode && !defaults.Secure {
		return nil, ErrInsecureSameSiteNone
	}

	return &Manager{defaults: defaults}, nil
}

// Set writes a cookie with the manager defaults, overridden by opts.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if name == "" {
		return ErrEmptyName
	}

	options := applyOptions(m.defaults, opts)

	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
	if options.MaxAge > 0 {
		cookie.Expires = time.Now().Add(time.Duration(options.MaxAge) * time.Second)
	}

	http.SetCookie(w, cookie)
	return nil
}

// Get returns the value of the named cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

// Delete expires the named cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// Defaults returns a copy of the manager default options.
func (m *Manager) Defaults() Options {
	return m.defaults
}
