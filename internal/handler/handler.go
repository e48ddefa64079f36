package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/sysu-ecnc-dev/muster/backend/internal/config"
	"github.com/sysu-ecnc-dev/muster/backend/internal/domain"
	"go.uber.org/zap"
)

// PeopleFetcher 是看板数据的来源，目前由 mock.Fetcher 实现
type PeopleFetcher interface {
	FetchArrivedPeople(ctx context.Context) ([]domain.Person, error)
	FetchNotArrivedPeople(ctx context.Context) ([]domain.UnresolvedPerson, error)
	FetchNotArrivedPerson(ctx context.Context, id int) (*domain.UnresolvedPerson, error)
}

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	fetcher    PeopleFetcher
	translator ut.Translator
	logger     *zap.Logger

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, fetcher PeopleFetcher, logger *zap.Logger) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		fetcher:    fetcher,
		translator: trans,
		logger:     logger,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestLogger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/healthz", h.Healthz)

	h.Mux.Route("/people", func(r chi.Router) {
		r.Get("/overview", h.GetOverview)
		r.Get("/arrived", h.GetArrivedPeople)
		r.Route("/not-arrived", func(r chi.Router) {
			r.Get("/", h.GetNotArrivedPeople)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.notArrivedPerson)
				r.Get("/", h.GetNotArrivedPerson)
			})
		})
	})
}
