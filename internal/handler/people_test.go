package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/muster/backend/internal/config"
	"github.com/sysu-ecnc-dev/muster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/muster/backend/internal/mock"
	"go.uber.org/zap"
)

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func newTestHandler(t *testing.T, latency time.Duration) *Handler {
	t.Helper()

	ds, err := mock.NewDataset(mock.DefaultParams())
	require.NoError(t, err)

	h, err := NewHandler(&config.Config{}, mock.NewFetcher(ds, latency), zap.NewNop())
	require.NoError(t, err)
	h.RegisterRoutes()
	return h
}

func doGet[T any](t *testing.T, h *Handler, target string) (int, envelope[T]) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	var body envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestGetArrivedPeople(t *testing.T) {
	h := newTestHandler(t, 0)

	code, body := doGet[[]domain.Person](t, h, "/people/arrived")
	require.Equal(t, http.StatusOK, code)
	require.True(t, body.Success)
	require.Len(t, body.Data, 72)
	require.Equal(t, 1, body.Data[0].ID)
	require.Equal(t, 72, body.Data[71].ID)
}

func TestGetArrivedPeople_Filters(t *testing.T) {
	h := newTestHandler(t, 0)

	code, body := doGet[[]domain.Person](t, h, "/people/arrived?group=2")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data, 36)
	for _, p := range body.Data {
		require.Equal(t, 2, p.Group)
	}

	code, body = doGet[[]domain.Person](t, h, "/people/arrived?q=ww")
	require.Equal(t, http.StatusOK, code)
	for _, p := range body.Data {
		require.Contains(t, []string{"卫五", "王五"}, p.Name)
	}

	code, body = doGet[[]domain.Person](t, h, "/people/arrived?q=%E5%8D%AB%E4%BA%94")
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, body.Data)
	require.Equal(t, "卫五", body.Data[0].Name)
}

func TestGetArrivedPeople_InvalidQuery(t *testing.T) {
	h := newTestHandler(t, 0)

	code, body := doGet[any](t, h, "/people/arrived?group=3")
	require.Equal(t, http.StatusBadRequest, code)
	require.False(t, body.Success)
	require.NotEmpty(t, body.Message)
}

func TestGetNotArrivedPeople(t *testing.T) {
	h := newTestHandler(t, 0)

	code, body := doGet[[]domain.UnresolvedPerson](t, h, "/people/not-arrived")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data, 8)
	for i, p := range body.Data {
		require.Equal(t, 73+i, p.ID)
		require.Len(t, p.Track, 5)
		require.NotEmpty(t, p.LastArea)
		require.True(t, p.Track[4].Time.Equal(p.LastTime))
	}
}

func TestGetNotArrivedPerson(t *testing.T) {
	h := newTestHandler(t, 0)

	code, body := doGet[domain.UnresolvedPerson](t, h, "/people/not-arrived/73")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 73, body.Data.ID)
	require.Equal(t, "吴十", body.Data.Name)
	require.Len(t, body.Data.Track, 5)

	code, _ = doGet[any](t, h, "/people/not-arrived/1")
	require.Equal(t, http.StatusNotFound, code)

	code, _ = doGet[any](t, h, "/people/not-arrived/abc")
	require.Equal(t, http.StatusBadRequest, code)
}

func TestGetOverview_Concurrent(t *testing.T) {
	h := newTestHandler(t, mock.DefaultLatency)

	start := time.Now()
	code, body := doGet[overview](t, h, "/people/overview")
	elapsed := time.Since(start)

	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 80, body.Data.ExpectedCount)
	require.Equal(t, 72, body.Data.ArrivedCount)
	require.Equal(t, 8, body.Data.NotArrivedCount)
	require.Len(t, body.Data.Arrived, 72)
	require.Len(t, body.Data.NotArrived, 8)
	require.GreaterOrEqual(t, elapsed, mock.DefaultLatency)
	require.Less(t, elapsed, 2*mock.DefaultLatency)
}

func TestRecoverer(t *testing.T) {
	h := newTestHandler(t, 0)
	h.Mux.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	code, body := doGet[any](t, h, "/panic")
	require.Equal(t, http.StatusInternalServerError, code)
	require.False(t, body.Success)
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t, 0)

	code, body := doGet[any](t, h, "/healthz")
	require.Equal(t, http.StatusOK, code)
	require.True(t, body.Success)
}
