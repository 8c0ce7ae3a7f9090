package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bloglist/internal/httputil"
)

type UserHandlers struct {
	Service *UserService
}

func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{Service: service}
}

func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var input CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCredentials), errors.Is(err, ErrUsernameTaken):
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("error creating user: %v", err)
			httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *UserHandlers) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAll(r.Context())
	if err != nil {
		log.Printf("error listing users: %v", err)
		httputil.WriteError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, users)
}
