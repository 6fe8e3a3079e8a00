package staff

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/staffdesk/pkg/binder"
	"github.com/dmitrymomot/staffdesk/pkg/logger"
	"github.com/dmitrymomot/staffdesk/pkg/validator"
)

// ValidateResponse is the body of POST /validate.
type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Errors validator.ErrorMap `json:"errors,omitempty"`
}

// PolicyResponse is the body of GET /policy.
type PolicyResponse struct {
	Password validator.PasswordPolicy `json:"password"`
	MinAge   int                      `json:"min_age"`
	Roles    []string                 `json:"roles"`
}

type validateQuery struct {
	Mode string `query:"mode"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handle returns the module router:
//
//	POST /validate?mode=create|update  JSON or form body
//	GET  /policy
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/validate", s.handleValidate(binder.Query(), binder.Any()))
	r.Get("/policy", s.handlePolicy)
	return r
}

func (s *Service) handleValidate(bindQuery, bindBody func(*http.Request, any) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q validateQuery
		if err := bindQuery(r, &q); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		mode, err := ParseMode(q.Mode)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		var form Form
		if err := bindBody(r, &form); err != nil {
			s.log.WarnContext(r.Context(), "staff form binding failed", logger.Handler("validate"), logger.Error(err))
			writeJSON(w, bindStatus(err), errorResponse{Error: err.Error()})
			return
		}

		errs := s.Validate(r.Context(), mode, form)
		if !errs.IsEmpty() {
			writeJSON(w, http.StatusUnprocessableEntity, ValidateResponse{Errors: errs})
			return
		}
		writeJSON(w, http.StatusOK, ValidateResponse{Valid: true})
	}
}

func (s *Service) handlePolicy(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PolicyResponse{
		Password: s.opts.Policy,
		MinAge:   s.opts.MinAge,
		Roles:    Roles,
	})
}

func bindStatus(err error) int {
	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
