// Package cookie is a small HTTP cookie manager.
//
// A Manager carries default attributes (path, domain, secure, http-only,
// same-site) that are applied to every cookie it writes; individual calls can
// override them with Option values. Values are written as-is: callers that
// need integrity protection store an already signed value, such as a JWT.
//
// # Usage
//
//	m, err := cookie.New(
//		cookie.WithSecure(true),
//		cookie.WithSameSite(http.SameSiteNoneMode),
//	)
//	if err != nil {
//		// SameSite=None without Secure is rejected
//	}
//
//	_ = m.Set(w, "token", signed, cookie.WithMaxAge(3600))
//	value, err := m.Get(r, "token")
//	m.Delete(w, "token")
package cookie
