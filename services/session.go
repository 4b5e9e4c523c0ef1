package services

import (
	"net/http"

	"mybooks/config"
	"mybooks/models"

	"github.com/gorilla/sessions"
)

var store *sessions.CookieStore

const sessionName = "mb_sid"

func InitSessionStore(cfg *config.Config) {
	store = sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600, // 1 hour
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func GetSession(r *http.Request) (*sessions.Session, error) {
	return store.Get(r, sessionName)
}

func SaveSession(w http.ResponseWriter, r *http.Request, session *sessions.Session) error {
	return session.Save(r, w)
}

// SessionIdentity restores the identity stored at login. The values are
// trusted as-is; there is no lookup against the users table here.
func SessionIdentity(r *http.Request) (*models.Identity, bool) {
	session, err := GetSession(r)
	if err != nil {
		return nil, false
	}

	id, ok := session.Values["user_id"].(int64)
	if !ok {
		return nil, false
	}
	name, _ := session.Values["user_name"].(string)
	isAdmin, _ := session.Values["is_admin"].(bool)

	return &models.Identity{ID: id, Name: name, IsAdmin: isAdmin}, true
}
