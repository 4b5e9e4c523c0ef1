package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"mybooks/services"
	"mybooks/validation"
)

var emailPattern = regexp.MustCompile(`.+@.+`)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type changeNameRequest struct {
	Name string `json:"name"`
}

// Login resolves email+password to a session. Unknown email and wrong
// password produce the identical 401 body.
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	decodeJSON(r, &req)

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, messageBody{Message: msgLoginFailed})
			return
		}
		slog.Error("login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}

	if err := setupUserSession(w, r, user); err != nil {
		slog.Error("failed to setup session", "user_id", user.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, messageBody{Message: msgServerError})
		return
	}

	slog.Info("user logged in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, messageBody{Message: msgLoginOK})
}

func Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	decodeJSON(r, &req)

	firstErr := validation.New().
		Require("email", req.Email, msgEmailFormat).
		Match("email", req.Email, emailPattern, msgEmailFormat).
		Require("name", req.Name, msgMissingParam).
		Require("password", req.Password, msgMissingParam).
		First()
	if firstErr != nil {
		writeJSON(w, http.StatusBadRequest, reasonBody{Reason: firstErr.Message})
		return
	}

	user, err := services.RegisterUser(req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			writeJSON(w, http.StatusBadRequest, reasonBody{Reason: msgEmailTaken})
			return
		}
		slog.Error("registration failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, reasonBody{Reason: msgServerError})
		return
	}

	if err := setupUserSession(w, r, user); err != nil {
		slog.Error("failed to setup session", "user_id", user.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, reasonBody{Reason: msgServerError})
		return
	}

	slog.Info("user registered", "user_id", user.ID)
	w.WriteHeader(http.StatusOK)
}

// ChangeName updates the authenticated user's display name and refreshes
// the copy held in the session, so later requests on this session see
// the new name without a store reload.
func ChangeName(w http.ResponseWriter, r *http.Request) {
	var req changeNameRequest
	decodeJSON(r, &req)

	if firstErr := validation.New().
		Require("name", req.Name, msgNameRequired).
		First(); firstErr != nil {
		writeJSON(w, http.StatusBadRequest, reasonBody{Reason: firstErr.Message})
		return
	}

	identity, ok := services.SessionIdentity(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, reasonBody{Reason: msgLoginRequired})
		return
	}

	if err := services.UpdateUserName(identity.ID, req.Name); err != nil {
		slog.Error("name change failed", "user_id", identity.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, reasonBody{Reason: msgServerError})
		return
	}

	if session, err := services.GetSession(r); err == nil {
		session.Values["user_name"] = req.Name
		services.SaveSession(w, r, session)
	}

	writeJSON(w, http.StatusOK, messageBody{Message: msgNameChanged})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	clearUserSession(w, r)
	writeJSON(w, http.StatusOK, messageBody{Message: msgLoginOK})
}
