package expense

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/expensesplit/pkg/middleware"
	"github.com/fkhayef/expensesplit/pkg/response"
)

func newTestRouter() http.Handler {
	svc, _ := newTestService()
	r := chi.NewRouter()
	r.Use(middleware.TestUserMiddleware)
	r.Mount("/expenses", NewHandler(svc).Routes())
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, userID string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if userID != "" {
		req.Header.Set(middleware.TestUserHeader, userID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope[T any] struct {
	Success bool               `json:"success"`
	Data    T                  `json:"data"`
	Error   *response.APIError `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var body envelope[T]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandler_Preview(t *testing.T) {
	h := newTestRouter()

	rec := doRequest(t, h, http.MethodPost, "/expenses/preview",
		`{"amount": 90, "split_type": "EXACT", "payer_id": 1,
		  "participants": [{"user_id": 1, "amount": 30}, {"user_id": 2, "amount": 60}]}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[PreviewResponse](t, rec)
	require.Len(t, body.Data.Participants, 2)
	assert.Equal(t, "30.00", body.Data.Participants[0].Amount.StringFixed(2))
	assert.Equal(t, "60.00", body.Data.Participants[1].Amount.StringFixed(2))
	assert.Equal(t, "90.00", body.Data.Allocated.StringFixed(2))
}

func TestHandler_Preview_ValidationError(t *testing.T) {
	h := newTestRouter()

	rec := doRequest(t, h, http.MethodPost, "/expenses/preview",
		`{"amount": 90, "split_type": "EXACT", "payer_id": 1,
		  "participants": [{"user_id": 1, "amount": 30}, {"user_id": 2, "amount": 59.99}]}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[any](t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "EXACT_SUM_MISMATCH", body.Error.Code)
	assert.Equal(t, "89.99", body.Error.Details["sum"])
	assert.Equal(t, "90.00", body.Error.Details["expected"])
}

func TestHandler_Preview_BadBody(t *testing.T) {
	h := newTestRouter()

	rec := doRequest(t, h, http.MethodPost, "/expenses/preview", `{"amount": "ninety"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/expenses/preview",
		`{"amount": 0, "split_type": "EQUAL", "payer_id": 1, "participants": [{"user_id": 1}]}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_AMOUNT", decode[any](t, rec).Error.Code)

	rec = doRequest(t, h, http.MethodPost, "/expenses/preview",
		`{"amount": "0.004", "split_type": "EQUAL", "payer_id": 1, "participants": [{"user_id": 1}, {"user_id": 2}]}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_AMOUNT", decode[any](t, rec).Error.Code)
}

func TestHandler_CreateGetDelete(t *testing.T) {
	h := newTestRouter()

	rec := doRequest(t, h, http.MethodPost, "/expenses",
		`{"description": "Pizza", "amount": 100, "split_type": "EVEN", "payer_id": 4,
		  "participants": [{"user_id": 1}, {"user_id": 2}, {"user_id": 3}]}`, "4")
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[ExpenseResponse](t, rec)
	assert.Equal(t, "EQUAL", string(created.Data.SplitType))
	assert.Equal(t, int64(4), created.Data.CreatedBy)
	require.Len(t, created.Data.Participants, 4)
	assert.Equal(t, "33.33", created.Data.Participants[0].Amount.StringFixed(2))
	assert.Equal(t, int64(4), created.Data.Participants[3].UserID)

	rec = doRequest(t, h, http.MethodGet, "/expenses/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Pizza", decode[ExpenseResponse](t, rec).Data.Description)

	rec = doRequest(t, h, http.MethodDelete, "/expenses/1", "", "2")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/expenses/1", "", "4")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/expenses/1", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/expenses/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Update(t *testing.T) {
	h := newTestRouter()

	rec := doRequest(t, h, http.MethodPost, "/expenses",
		`{"description": "Hotel", "group_id": 10, "amount": 300, "split_type": "EQUAL", "payer_id": 1,
		  "participants": [{"user_id": 1}, {"user_id": 2}, {"user_id": 3}]}`, "1")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodPut, "/expenses/1",
		`{"description": "Hotel", "amount": 300, "split_type": "PERCENTAGE", "payer_id": 1,
		  "participants": [{"user_id": 1, "percentage": 50}, {"user_id": 2, "percentage": 50}]}`, "1")
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[ExpenseResponse](t, rec)
	require.Len(t, updated.Data.Participants, 2)
	assert.Equal(t, "150.00", updated.Data.Participants[1].Amount.StringFixed(2))

	rec = doRequest(t, h, http.MethodPut, "/expenses/1",
		`{"description": "Hotel", "amount": 300, "split_type": "EQUAL", "payer_id": 1,
		  "participants": [{"user_id": 1}, {"user_id": 5}]}`, "1")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NOT_GROUP_MEMBER", decode[any](t, rec).Error.Code)
}

func TestHandler_ListByGroup(t *testing.T) {
	h := newTestRouter()

	for i := 0; i < 3; i++ {
		rec := doRequest(t, h, http.MethodPost, "/expenses",
			`{"description": "Coffee", "group_id": 10, "amount": 9, "split_type": "EQUAL", "payer_id": 1,
			  "participants": [{"user_id": 1}, {"user_id": 2}]}`, "1")
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, h, http.MethodGet, "/expenses/group/10?page=2&per_page=2", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []ExpenseResponse `json:"data"`
		Meta response.Meta     `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, 3, body.Meta.Total)
	assert.Equal(t, 2, body.Meta.TotalPages)

	rec = doRequest(t, h, http.MethodGet, "/expenses/group/12", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
