package handlers

import (
	"net/http"

	"mybooks/middleware"

	"github.com/go-chi/chi/v5"
)

// Routes wires the full middleware chain and routers. Exposed as a
// plain http.Handler so main and the handler tests share the exact
// same wiring.
func Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Recover)

	// Static files
	fs := http.FileServer(http.Dir("static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/login", Login)
		r.Post("/register", Register)
		r.Post("/logout", Logout)
		r.Put("/change", ChangeName)
	})

	r.Route("/book", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/list", ListBooks)
		r.Get("/list/{page}", ListBooks)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireAdmin)
		r.Post("/author", CreateAuthor)
		r.Put("/author", UpdateAuthor)
		r.Delete("/author", DeleteAuthor)
		r.Post("/publisher", CreatePublisher)
		r.Put("/publisher", UpdatePublisher)
		r.Delete("/publisher", DeletePublisher)
		r.Post("/book", CreateBook)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, messageBody{Message: "Not Found"})
	})

	return r
}
