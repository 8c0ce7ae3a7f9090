package blog

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bloglist/db"
	"bloglist/internal/httputil"

	"github.com/gorilla/mux"
)

type BlogHandlers struct {
	Service *BlogService
}

func NewBlogHandlers(service *BlogService) *BlogHandlers {
	return &BlogHandlers{Service: service}
}

func (h *BlogHandlers) GetAll(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Service.GetAll(r.Context())
	if err != nil {
		log.Printf("error listing blogs: %v", err)
		httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, blogs)
}

func (h *BlogHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrTitleRequired), errors.Is(err, ErrURLRequired):
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("error creating blog: %v", err)
			httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *BlogHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input UpdateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrTitleRequired), errors.Is(err, ErrURLRequired):
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, db.ErrNotFound):
			httputil.WriteError(w, http.StatusNotFound, "blog not found")
		default:
			log.Printf("error updating blog: %v", err)
			httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, updated)
}

// Delete is idempotent: a missing id still yields 204.
func (h *BlogHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Delete(r.Context(), id); err != nil {
		log.Printf("error deleting blog: %v", err)
		httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
