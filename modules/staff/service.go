package staff

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/staffdesk/pkg/logger"
	"github.com/dmitrymomot/staffdesk/pkg/sanitizer"
	"github.com/dmitrymomot/staffdesk/pkg/validator"
)

// Service validates staff forms. It is safe for concurrent use.
type Service struct {
	opts    Options
	schemas map[Mode]validator.Schema
	log     *slog.Logger
}

func NewService(opts Options, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		opts: opts,
		schemas: map[Mode]validator.Schema{
			ModeCreate: Schema(ModeCreate, opts),
			ModeUpdate: Schema(ModeUpdate, opts),
		},
		log: log.With(logger.Component("staff")),
	}
}

// Options returns the settings the service was built with.
func (s *Service) Options() Options {
	return s.opts
}

// Validate sanitizes form and checks it against the schema for mode.
// The returned map is empty when the form is valid. Unknown modes are
// treated as create.
func (s *Service) Validate(ctx context.Context, mode Mode, form Form) validator.ErrorMap {
	schema, ok := s.schemas[mode]
	if !ok {
		mode, schema = ModeCreate, s.schemas[ModeCreate]
	}

	errs := validator.ValidateForm(form.Values(), schema)
	if !errs.IsEmpty() {
		s.log.DebugContext(ctx, "staff form rejected",
			slog.String("mode", string(mode)),
			slog.String("email", sanitizer.MaskEmail(form.Email)),
			logger.Fields(errs.Fields()),
		)
	}
	return errs
}
