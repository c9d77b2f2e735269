// Package jwt signs and verifies HS256 JSON Web Tokens and provides HTTP
// middleware and context helpers around them.
//
// A Service wraps signing and verification and accepts any JSON-serialisable
// claims value. The registered temporal claims (exp, nbf) are checked on every
// Parse against the service clock, which can be replaced with WithClock in
// tests.
//
// # Usage
//
//	svc, err := jwt.NewFromString("super-secret")
//	if err != nil {
//		// handle error
//	}
//
//	token, err := svc.Generate(map[string]any{
//		"email": "a@x.com",
//		"exp":   time.Now().Add(time.Hour).Unix(),
//	})
//
//	claims := map[string]any{}
//	if err := svc.Parse(token, &claims); err != nil {
//		// invalid or expired token
//	}
//
//	mw := jwt.MiddlewareWithConfig(jwt.MiddlewareConfig{
//		Service:   svc,
//		Extractor: jwt.CookieTokenExtractor("token"),
//	})
//
// Errors are sentinel values and can be compared with errors.Is.
package jwt
