package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const sessionCookieName = "sisinfo_session"

var cookieStore *sessions.CookieStore

// InitCookieStore configure le cookie de session pour les clients
// navigateur qui ne portent pas d'en-tête Authorization.
func InitCookieStore() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("⚠️ SESSION_SECRET manquant — cookie de session désactivé, seul le Bearer token est accepté")
		return
	}

	cookieStore = sessions.NewCookieStore([]byte(secret))
	cookieStore.MaxAge(86400)
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
	log.Println("✅ Cookie de session initialisé")
}

// SaveSessionCookie lie la session au navigateur après login/inscription.
func SaveSessionCookie(c *gin.Context, sessionID string) {
	if cookieStore == nil {
		return
	}
	s, _ := cookieStore.Get(c.Request, sessionCookieName)
	s.Values["sid"] = sessionID
	if err := s.Save(c.Request, c.Writer); err != nil {
		log.Printf("⚠️ Écriture du cookie de session impossible: %v", err)
	}
}

// ClearSessionCookie invalide le cookie au logout.
func ClearSessionCookie(c *gin.Context) {
	if cookieStore == nil {
		return
	}
	s, _ := cookieStore.Get(c.Request, sessionCookieName)
	s.Options.MaxAge = -1
	_ = s.Save(c.Request, c.Writer)
}

func sessionIDFromCookie(r *http.Request) string {
	if cookieStore == nil {
		return ""
	}
	s, err := cookieStore.Get(r, sessionCookieName)
	if err != nil {
		return ""
	}
	sid, _ := s.Values["sid"].(string)
	return sid
}
