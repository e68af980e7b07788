package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damienborowski/AlphaFinity-v2/analytics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const barsJSON = `[
	{"date":"01/01/2020","open":10,"close":10,"high":10,"low":10,"volume":1},
	{"date":"02/01/2020","open":10,"close":20,"high":20,"low":10,"volume":1}
]`

type uploadField struct {
	name, content string
}

func backtestRequest(t *testing.T, files []uploadField, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile(f.name, f.name+".json")
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/backtest", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	router := NewServer(nil, nil).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestBacktest_Success(t *testing.T) {
	router := NewServer(nil, nil).Router()

	req := backtestRequest(t, []uploadField{
		{"benchmarkData", barsJSON},
		{"strategyData", barsJSON},
	}, map[string]string{
		"strategy": "buy-and-hold",
		"capital":  "100",
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report analytics.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 100.0, report.StartingCapital)
	assert.Equal(t, 200.0, report.EndingCapital)
	assert.Equal(t, 100.0, report.TotalReturnPct)
	assert.Len(t, report.Transactions, 2)
}

func TestBacktest_MissingUpload(t *testing.T) {
	router := NewServer(nil, nil).Router()

	req := backtestRequest(t, []uploadField{
		{"strategyData", barsJSON},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_BENCHMARK_DATA", decodeError(t, rec).Error.Code)
}

func TestBacktest_MalformedSeries(t *testing.T) {
	router := NewServer(nil, nil).Router()

	req := backtestRequest(t, []uploadField{
		{"benchmarkData", barsJSON},
		{"strategyData", `[{"date":"2020-01-01","close":1}]`},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STRATEGY_DATA", decodeError(t, rec).Error.Code)
}

func TestBacktest_UnknownStrategy(t *testing.T) {
	router := NewServer(nil, nil).Router()

	req := backtestRequest(t, []uploadField{
		{"benchmarkData", barsJSON},
		{"strategyData", barsJSON},
	}, map[string]string{"strategy": "macd"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_STRATEGY", decodeError(t, rec).Error.Code)
}

func TestBacktest_InvalidCapital(t *testing.T) {
	router := NewServer(nil, nil).Router()

	for _, capital := range []string{"-5", "0", "lots"} {
		req := backtestRequest(t, []uploadField{
			{"benchmarkData", barsJSON},
			{"strategyData", barsJSON},
		}, map[string]string{"capital": capital})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_CAPITAL", decodeError(t, rec).Error.Code)
	}
}

func TestBacktest_MismatchedTimeframes(t *testing.T) {
	router := NewServer(nil, nil).Router()

	shifted := `[
		{"date":"03/01/2020","close":10},
		{"date":"04/01/2020","close":20}
	]`
	req := backtestRequest(t, []uploadField{
		{"benchmarkData", barsJSON},
		{"strategyData", shifted},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BACKTEST_REJECTED", decodeError(t, rec).Error.Code)
}
