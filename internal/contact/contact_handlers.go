package contact

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bloglist/db"
	"bloglist/internal/httputil"

	"github.com/gorilla/mux"
)

type ContactHandlers struct {
	Service *ContactService
}

func NewContactHandlers(service *ContactService) *ContactHandlers {
	return &ContactHandlers{Service: service}
}

func (h *ContactHandlers) GetAll(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Service.GetAll(r.Context())
	if err != nil {
		log.Printf("error listing contacts: %v", err)
		httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var input ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrNumberRequired), errors.Is(err, ErrNameTaken):
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("error creating contact: %v", err)
			httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *ContactHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrNumberRequired), errors.Is(err, ErrNameTaken):
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, db.ErrNotFound):
			httputil.WriteError(w, http.StatusNotFound, "contact not found")
		default:
			log.Printf("error updating contact: %v", err)
			httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, updated)
}

// Delete is idempotent: a missing id still yields 204.
func (h *ContactHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Delete(r.Context(), id); err != nil {
		log.Printf("error deleting contact: %v", err)
		httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
