// Package auth provides session-based authentication for the application.
//
// Credentials are verified against bcrypt hashes stored with each user;
// successful logins establish a server-side session (scs with a sqlite
// store) identified by an opaque cookie. Protected routes are wrapped with
// the RequireSession guard, which redirects anonymous requests to /login.
//
// # Configuration
//
//	AUTH_SESSION_SECRET=<hex-32-bytes>  # CSRF secret, auto-generated if empty
//	AUTH_SESSION_LIFETIME=24h           # Session duration
//	AUTH_BCRYPT_COST=12                 # bcrypt cost factor
//	AUTH_SECURE_COOKIES=true            # HTTPS-only cookies
//	AUTH_MAX_LOGIN_ATTEMPTS=5           # Failed attempts before lockout
//	AUTH_LOCKOUT_DURATION=30m           # Lockout duration
//
// # Usage
//
// Initialize authentication in entrypoint:
//
//	authService := auth.NewService(db.DB, cfg.Auth)
//	sessionManager, _ := auth.NewSessionManager(sqlDB, cfg.Auth)
//	guard := auth.NewMiddleware(sessionManager)
//
// Guard routes:
//
//	protected := router.Group("/", guard.RequireSession())
//
// Extract user in handlers:
//
//	userID := auth.GetUserID(c)
package auth
