package handler

import (
	"net/http"
	"strconv"

	"github.com/sysu-ecnc-dev/muster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/muster/backend/internal/utils"
	"golang.org/x/sync/errgroup"
)

type peopleQuery struct {
	Group string `validate:"omitempty,oneof=1 2"`
	Q     string `validate:"omitempty,max=32"`
}

func (h *Handler) readPeopleQuery(r *http.Request) (*peopleQuery, error) {
	values := r.URL.Query()
	q := &peopleQuery{
		Group: values.Get("group"),
		Q:     values.Get("q"),
	}

	if err := h.validate.Struct(q); err != nil {
		return nil, err
	}

	return q, nil
}

func (q *peopleQuery) matches(p *domain.Person) bool {
	if q.Group != "" && strconv.Itoa(p.Group) != q.Group {
		return false
	}
	return utils.NameMatches(p.Name, q.Q)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "ok", nil)
}

func (h *Handler) GetArrivedPeople(w http.ResponseWriter, r *http.Request) {
	query, err := h.readPeopleQuery(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	people, err := h.fetcher.FetchArrivedPeople(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filtered := make([]domain.Person, 0, len(people))
	for i := range people {
		if query.matches(&people[i]) {
			filtered = append(filtered, people[i])
		}
	}

	h.successResponse(w, r, "获取已到人员成功", filtered)
}

func (h *Handler) GetNotArrivedPeople(w http.ResponseWriter, r *http.Request) {
	query, err := h.readPeopleQuery(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	people, err := h.fetcher.FetchNotArrivedPeople(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filtered := make([]domain.UnresolvedPerson, 0, len(people))
	for i := range people {
		if query.matches(&people[i].Person) {
			filtered = append(filtered, people[i])
		}
	}

	h.successResponse(w, r, "获取未到人员成功", filtered)
}

func (h *Handler) GetNotArrivedPerson(w http.ResponseWriter, r *http.Request) {
	person := r.Context().Value(NotArrivedPersonCtx).(*domain.UnresolvedPerson)
	h.successResponse(w, r, "获取人员轨迹成功", person)
}

type overview struct {
	ExpectedCount   int                       `json:"expectedCount"`
	ArrivedCount    int                       `json:"arrivedCount"`
	NotArrivedCount int                       `json:"notArrivedCount"`
	Arrived         []domain.Person           `json:"arrived"`
	NotArrived      []domain.UnresolvedPerson `json:"notArrived"`
}

// GetOverview 同时拉取两个列表，总耗时约为一次延迟
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	var (
		arrived    []domain.Person
		notArrived []domain.UnresolvedPerson
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		arrived, err = h.fetcher.FetchArrivedPeople(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		notArrived, err = h.fetcher.FetchNotArrivedPeople(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取到岗概况成功", overview{
		ExpectedCount:   len(arrived) + len(notArrived),
		ArrivedCount:    len(arrived),
		NotArrivedCount: len(notArrived),
		Arrived:         arrived,
		NotArrived:      notArrived,
	})
}
