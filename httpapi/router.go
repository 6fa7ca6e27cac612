package httpapi

import (
	"context"
	"net/http"

	goCounter "github.com/MrEthical07/goCounter"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type counterService interface {
	Create(ctx context.Context) (goCounter.Counter, error)
	Get(ctx context.Context, id uuid.UUID) (goCounter.Counter, error)
	List(ctx context.Context) ([]goCounter.Counter, error)
	Increment(ctx context.Context, id uuid.UUID) (goCounter.Counter, error)
	Decrement(ctx context.Context, id uuid.UUID) (goCounter.Counter, error)
}

type handlers struct {
	svc counterService
}

// NewRouter returns the bare route table for svc, without middleware.
func NewRouter(svc counterService) *mux.Router {
	h := &handlers{svc: svc}

	r := mux.NewRouter()
	r.HandleFunc("/", h.index).Methods(http.MethodGet)
	r.HandleFunc("/counter", h.list).Methods(http.MethodGet)
	r.HandleFunc("/counter", h.create).Methods(http.MethodPost)
	r.HandleFunc("/counter/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/counter/{id}/increment", h.increment).Methods(http.MethodPut)
	r.HandleFunc("/counter/{id}/decrement", h.decrement).Methods(http.MethodPut)

	notFound := http.HandlerFunc(notFoundHandler)
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = notFound

	return r
}

func (h *handlers) index(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Message: "Welcome to Counter a Service",
	})
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	counters, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counters)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Create(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, h.svc.Get)
}

func (h *handlers) increment(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, h.svc.Increment)
}

func (h *handlers) decrement(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, h.svc.Decrement)
}

func (h *handlers) withID(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, uuid.UUID) (goCounter.Counter, error),
) {
	id, err := goCounter.ParseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := op(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Status: "error", Reason: reasonNotFound})
}
