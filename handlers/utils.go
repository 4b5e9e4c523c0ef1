package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"mybooks/models"
	"mybooks/services"
)

// messageBody is the common {"message": ...} response shape.
type messageBody struct {
	Message string `json:"message"`
}

// reasonBody is the {"reason": ...} error shape the user routes have
// always used; kept for client compatibility.
type reasonBody struct {
	Reason string `json:"reason"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON fills v from the request body. A malformed or empty body
// leaves v zeroed so the field validation reports the missing fields,
// the same way an empty form submission would.
func decodeJSON(r *http.Request, v any) {
	if r.Body == nil {
		return
	}
	defer io.Copy(io.Discard, r.Body)
	_ = json.NewDecoder(r.Body).Decode(v)
}

// setupUserSession establishes the cookie session after a successful
// login or registration. Only the minimal identity is persisted.
func setupUserSession(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, err := services.GetSession(r)
	if err != nil {
		return err
	}

	session.Values["user_id"] = user.ID
	session.Values["user_name"] = user.Name
	session.Values["is_admin"] = user.IsAdmin

	return services.SaveSession(w, r, session)
}

func clearUserSession(w http.ResponseWriter, r *http.Request) {
	session, err := services.GetSession(r)
	if err != nil {
		return
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	services.SaveSession(w, r, session)
}
