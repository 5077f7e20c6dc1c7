package session

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

const cookieName = "session"

// BeginSession returns the caller's storage key, creating and setting a new
// session cookie if the request carried none. The cookie value doubles as
// the cart's persistence key.
func BeginSession(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(cookieName)
	// Along with checking if the cookie exists, make sure the length is valid
	if err != nil || len(cookie.Value) != 44 {
		session_id := SessionID()
		setSessionCookie(w, session_id)
		log.WithField("session", session_id).Debug("New session cookie created")
		return session_id
	}
	return cookie.Value
}

// Create and set the user's cookie in the http response
func setSessionCookie(w http.ResponseWriter, session_id string) {
	expiration := time.Now().Add(7 * 24 * time.Hour)
	cookie := http.Cookie{
		Name:     cookieName,
		Value:    session_id,
		Expires:  expiration,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, &cookie)
}

// SessionID generates a random session id (32 bytes, URL-safe base64, 44
// characters).
func SessionID() string {
	b := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}
