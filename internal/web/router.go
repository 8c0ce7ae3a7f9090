package web

import (
	"bloglist/internal/blog"
	"bloglist/internal/contact"
	"bloglist/internal/user"

	"github.com/gorilla/mux"
)

// SetupRoutes wires the resource handlers onto the /api surface.
func SetupRoutes(blogs *blog.BlogHandlers, users *user.UserHandlers, contacts *contact.ContactHandlers) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/blogs", blogs.GetAll).Methods("GET")
	api.HandleFunc("/blogs", blogs.Create).Methods("POST")
	api.HandleFunc("/blogs/{id}", blogs.Update).Methods("PUT")
	api.HandleFunc("/blogs/{id}", blogs.Delete).Methods("DELETE")

	api.HandleFunc("/users", users.GetAll).Methods("GET")
	api.HandleFunc("/users", users.Create).Methods("POST")

	api.HandleFunc("/persons", contacts.GetAll).Methods("GET")
	api.HandleFunc("/persons", contacts.Create).Methods("POST")
	api.HandleFunc("/persons/{id}", contacts.Update).Methods("PUT")
	api.HandleFunc("/persons/{id}", contacts.Delete).Methods("DELETE")

	return r
}
