package ui

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statcheck/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(&config.Config{
		Server:   config.ServerConfig{Port: "0"},
		Defaults: config.DefaultsConfig{Alpha: 0.05},
	})
	require.NoError(t, err)
	return app
}

func postForm(t *testing.T, app *App, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)
	return rec
}

func TestIndexPage(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "StatCheck")
	assert.Contains(t, body, "1 Mean (one sample)")
	assert.Contains(t, body, "2 Means (independent samples)")
	assert.Contains(t, body, `value="0.05"`)
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestOneSampleSubmission(t *testing.T) {
	app := newTestApp(t)

	rec := postForm(t, app, "/test/one", url.Values{
		"alpha":       {"0.05"},
		"alternative": {"two-sided"},
		"mu0":         {"10"},
		"sample":      {"12 15 14 10 9 11"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Fail to reject H₀")
	assert.Contains(t, body, "Student&#39;s t, df = 5")
	assert.Contains(t, body, "t = 1.93")
	assert.Contains(t, body, "H₀: μ = 10")
}

func TestTwoSampleSubmission(t *testing.T) {
	app := newTestApp(t)

	rec := postForm(t, app, "/test/two", url.Values{
		"alpha":       {"0.05"},
		"alternative": {"two-sided"},
		"delta0":      {"0"},
		"sample1":     {"12 15 14 10 9 11"},
		"sample2":     {"8 7 9 6 10 7"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Reject H₀")
	assert.Contains(t, body, "the two true means are different")
	assert.Contains(t, body, "Sample 1: n = 6")
	assert.Contains(t, body, "Sample 2: n = 6")
}

func TestSubmissionErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		form    url.Values
		message string
	}{
		{
			name: "Empty sample",
			path: "/test/one",
			form: url.Values{
				"alpha":       {"0.05"},
				"alternative": {"two-sided"},
				"sample":      {"   "},
			},
			message: "Input error",
		},
		{
			name: "Non-numeric sample",
			path: "/test/one",
			form: url.Values{
				"alpha":       {"0.05"},
				"alternative": {"two-sided"},
				"sample":      {"1 2 oops"},
			},
			message: "not numeric",
		},
		{
			name: "Constant sample",
			path: "/test/one",
			form: url.Values{
				"alpha":       {"0.05"},
				"alternative": {"two-sided"},
				"mu0":         {"5"},
				"sample":      {"5 5 5 5"},
			},
			message: "standard error is zero",
		},
		{
			name: "Single observation",
			path: "/test/one",
			form: url.Values{
				"alpha":       {"0.05"},
				"alternative": {"two-sided"},
				"sample":      {"42"},
			},
			message: "at least 2 observations",
		},
		{
			name: "Alpha out of range",
			path: "/test/one",
			form: url.Values{
				"alpha":       {"0.75"},
				"alternative": {"two-sided"},
				"sample":      {"1 2 3"},
			},
			message: "alpha",
		},
		{
			name: "Bad alternative",
			path: "/test/two",
			form: url.Values{
				"alpha":       {"0.05"},
				"alternative": {"sideways"},
				"sample1":     {"1 2 3"},
				"sample2":     {"4 5 6"},
			},
			message: "alternative",
		},
		{
			name: "Missing second sample",
			path: "/test/two",
			form: url.Values{
				"alpha":       {"0.05"},
				"alternative": {"two-sided"},
				"sample1":     {"1 2 3"},
			},
			message: "Input error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(t, newTestApp(t), tt.path, tt.form)

			require.Equal(t, http.StatusOK, rec.Code, "errors render on the form page")
			body := rec.Body.String()
			assert.Contains(t, body, "Input error")
			assert.Contains(t, body, tt.message)
			assert.NotContains(t, body, "Results", "no partial results on error")
		})
	}
}

func TestFormStaysUsableAfterError(t *testing.T) {
	app := newTestApp(t)

	rec := postForm(t, app, "/test/one", url.Values{
		"alpha":       {"0.05"},
		"alternative": {"two-sided"},
		"sample":      {"bad input"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postForm(t, app, "/test/one", url.Values{
		"alpha":       {"0.05"},
		"alternative": {"two-sided"},
		"mu0":         {"10"},
		"sample":      {"12 15 14 10 9 11"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fail to reject H₀")
}

func TestGuidePage(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/guide", nil)
	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "How to use StatCheck")
	assert.Contains(t, body, "<h2")
}
