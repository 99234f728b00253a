package ui

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"statcheck/adapters/excel"
	"statcheck/domain/core"
	"statcheck/domain/htest"
	"statcheck/domain/sample"
	apperrors "statcheck/internal/errors"
)

// formState echoes submitted form values back into the page
type formState struct {
	Alpha       string
	Alternative string
	Mu0         string
	Delta0      string
	SampleText  string
	Sample1Text string
	Sample2Text string
}

// pageData is the view model for the index page
type pageData struct {
	ActiveTab string // "one" or "two"
	Form      formState
	Report    *htest.Report
	Result    *htest.Result
	Error     string
	Notice    string
}

func (a *App) defaultForm() formState {
	return formState{
		Alpha:       strconv.FormatFloat(a.config.Defaults.Alpha, 'g', -1, 64),
		Alternative: string(htest.AltTwoSided),
		Mu0:         "0",
		Delta0:      "0",
	}
}

// handleIndex renders the test form
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderIndex(w, pageData{ActiveTab: "one", Form: a.defaultForm()})
}

// handleHealth reports liveness
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// handleOneSample evaluates a one-sample mean test from form input
func (a *App) handleOneSample(w http.ResponseWriter, r *http.Request) {
	data := pageData{ActiveTab: "one", Form: a.readForm(r)}

	cfg, err := a.readConfig(r)
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}
	mu0, err := parseFloatField(r, "mu0", 0)
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}
	values, err := sample.Parse(r.FormValue("sample"))
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}

	result, err := a.engine.EvaluateOneSample(htest.OneSampleRequest{
		Config: cfg,
		Mu0:    mu0,
		Data:   values,
	})
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}

	a.logger.Info("one-sample test evaluated id=%s fp=%.12s n=%d dist=%s reject=%t",
		result.ID, result.Fingerprint, result.Summary1.N, result.Dist.Kind, result.Reject)

	report := htest.BuildReport(result)
	data.Result = result
	data.Report = &report
	a.renderIndex(w, data)
}

// handleTwoSample evaluates an independent two-sample mean test from form input
func (a *App) handleTwoSample(w http.ResponseWriter, r *http.Request) {
	data := pageData{ActiveTab: "two", Form: a.readForm(r)}

	cfg, err := a.readConfig(r)
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}
	delta0, err := parseFloatField(r, "delta0", 0)
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}
	values1, err := sample.Parse(r.FormValue("sample1"))
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}
	values2, err := sample.Parse(r.FormValue("sample2"))
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}

	result, err := a.engine.EvaluateTwoSample(htest.TwoSampleRequest{
		Config: cfg,
		Delta0: delta0,
		Data1:  values1,
		Data2:  values2,
	})
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}

	a.logger.Info("two-sample test evaluated id=%s fp=%.12s n1=%d n2=%d dist=%s reject=%t",
		result.ID, result.Fingerprint, result.Summary1.N, result.Summary2.N, result.Dist.Kind, result.Reject)

	report := htest.BuildReport(result)
	data.Result = result
	data.Report = &report
	a.renderIndex(w, data)
}

// handleUpload extracts a numeric column from an uploaded .xlsx/.csv file
// and pre-fills the selected sample field with it.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	data := pageData{ActiveTab: "one", Form: a.defaultForm()}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		a.renderError(w, r, data, apperrors.InvalidInput("upload too large or malformed"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		a.renderError(w, r, data, apperrors.InvalidInput("no file provided"))
		return
	}
	defer file.Close()

	columns, err := excel.NewDataReader(header.Filename).Read(file)
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}

	column := strings.TrimSpace(r.FormValue("column"))
	if column == "" {
		column = columns.Headers[0]
	}
	values, err := columns.Column(column)
	if err != nil {
		a.renderError(w, r, data, err)
		return
	}

	text := formatSampleText(values)
	slot := r.FormValue("slot")
	switch slot {
	case "sample1":
		data.ActiveTab = "two"
		data.Form.Sample1Text = text
	case "sample2":
		data.ActiveTab = "two"
		data.Form.Sample2Text = text
	default:
		data.Form.SampleText = text
	}
	data.Notice = fmt.Sprintf("Loaded %d values from column %q of %s.", values.Size(), column, header.Filename)
	a.renderIndex(w, data)
}

// readForm echoes the raw submitted values
func (a *App) readForm(r *http.Request) formState {
	form := a.defaultForm()
	if v := r.FormValue("alpha"); v != "" {
		form.Alpha = v
	}
	if v := r.FormValue("alternative"); v != "" {
		form.Alternative = v
	}
	if v := r.FormValue("mu0"); v != "" {
		form.Mu0 = v
	}
	if v := r.FormValue("delta0"); v != "" {
		form.Delta0 = v
	}
	form.SampleText = r.FormValue("sample")
	form.Sample1Text = r.FormValue("sample1")
	form.Sample2Text = r.FormValue("sample2")
	return form
}

// readConfig parses and validates the shared test settings
func (a *App) readConfig(r *http.Request) (htest.Config, error) {
	alpha, err := parseFloatField(r, "alpha", a.config.Defaults.Alpha)
	if err != nil {
		return htest.Config{}, err
	}
	alt := r.FormValue("alternative")
	if alt == "" {
		alt = string(htest.AltTwoSided)
	}
	alternative, err := htest.ParseAlternative(alt)
	if err != nil {
		return htest.Config{}, err
	}
	cfg := htest.Config{Alpha: alpha, Alternative: alternative}
	return cfg, cfg.Validate()
}

func parseFloatField(r *http.Request, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, core.NewConfigError(name, fmt.Sprintf("must be numeric; got %q", raw))
	}
	return v, nil
}

func formatSampleText(values sample.Sample) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

// errorCode maps domain errors to application error codes for logging
func errorCode(err error) string {
	switch {
	case core.IsParseError(err):
		return apperrors.CodeParseError
	case core.IsInsufficientDataError(err):
		return apperrors.CodeInsufficientData
	case core.IsDegenerateInputError(err):
		return apperrors.CodeDegenerateInput
	case core.IsConfigError(err):
		return apperrors.CodeInvalidInput
	}
	return apperrors.GetCode(err)
}

// renderError surfaces the error verbatim on the form page; the form stays
// usable for the next submission and no partial results are shown.
func (a *App) renderError(w http.ResponseWriter, r *http.Request, data pageData, err error) {
	a.logger.Warn("evaluation rejected code=%s request_id=%s: %v",
		errorCode(err), RequestIDFromContext(r.Context()), err)
	data.Report = nil
	data.Result = nil
	data.Error = fmt.Sprintf("Input error: %v", err)
	a.renderIndex(w, data)
}

func (a *App) renderIndex(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		a.logger.Error("template render failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
