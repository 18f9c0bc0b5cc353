package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atsapi/internal/docstore"
	"atsapi/internal/model"
	"atsapi/internal/service"
	serviceMocks "atsapi/internal/service/mocks"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRoot(t *testing.T) {
	app := fiber.New()
	app.Get("/", Root())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "LevelUp ATS API", body["name"])
	assert.Equal(t, "ok", body["status"])
}

func TestSchemaInfo(t *testing.T) {
	app := fiber.New()
	app.Get("/schema", SchemaInfo())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/schema", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string][]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, model.Collections(), body["collections"])
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("no database configured", func(t *testing.T) {
		noDB := fiber.New()
		noDB.Get("/health", HealthCheck(nil))

		resp, _ := noDB.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestCreateJob(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(serviceMocks.MockJobService)
		svc.On("Create", mock.Anything, mock.AnythingOfType("model.JobIn")).Return("a1b2", nil)

		app := fiber.New()
		app.Post("/api/jobs", CreateJob(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/jobs",
			`{"title":"QA Engineer","department":"Engineering","owner":"Sam"}`))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "a1b2", body["id"])
		svc.AssertExpectations(t)
	})

	t.Run("missing required fields are enumerated", func(t *testing.T) {
		svc := new(serviceMocks.MockJobService)

		app := fiber.New()
		app.Post("/api/jobs", CreateJob(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/jobs", `{"title":"QA Engineer"}`))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		fields := make([]string, 0, len(body.Error.Fields))
		for _, f := range body.Error.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{"department", "owner"}, fields)
		// No store call may happen on a rejected body.
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid enum rejected", func(t *testing.T) {
		svc := new(serviceMocks.MockJobService)

		app := fiber.New()
		app.Post("/api/jobs", CreateJob(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/jobs",
			`{"title":"QA","department":"Eng","owner":"Sam","status":"archived"}`))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(serviceMocks.MockJobService)

		app := fiber.New()
		app.Post("/api/jobs", CreateJob(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/jobs", `{not json`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("store unavailable", func(t *testing.T) {
		svc := new(serviceMocks.MockJobService)
		svc.On("Create", mock.Anything, mock.AnythingOfType("model.JobIn")).
			Return("", docstore.ErrUnavailable)

		app := fiber.New()
		app.Post("/api/jobs", CreateJob(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/jobs",
			`{"title":"QA","department":"Eng","owner":"Sam"}`))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "STORE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestListJobs(t *testing.T) {
	svc := new(serviceMocks.MockJobService)
	svc.On("List", mock.Anything).Return([]map[string]any{
		{"id": "j1", "title": "QA Engineer", "status": "open"},
	}, nil)

	app := fiber.New()
	app.Get("/api/jobs", ListJobs(svc))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	require.Len(t, body, 1)
	assert.Equal(t, "j1", body[0]["id"])
	assert.Equal(t, "QA Engineer", body[0]["title"])
}

func TestUpdateCandidateStage(t *testing.T) {
	id := uuid.NewString()

	t.Run("ok", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)
		svc.On("UpdateStage", mock.Anything, id, model.StageOffer).Return(nil)

		app := fiber.New()
		app.Post("/api/candidates/:id/stage", UpdateCandidateStage(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/candidates/"+id+"/stage", `{"stage":"offer"}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "ok", body["status"])
		svc.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)

		app := fiber.New()
		app.Post("/api/candidates/:id/stage", UpdateCandidateStage(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/candidates/not-a-uuid/stage", `{"stage":"offer"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
		svc.AssertNotCalled(t, "UpdateStage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stage outside enum rejected", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)

		app := fiber.New()
		app.Post("/api/candidates/:id/stage", UpdateCandidateStage(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/candidates/"+id+"/stage", `{"stage":"limbo"}`))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		svc.AssertNotCalled(t, "UpdateStage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)
		svc.On("UpdateStage", mock.Anything, id, model.StageOffer).Return(docstore.ErrNotFound)

		app := fiber.New()
		app.Post("/api/candidates/:id/stage", UpdateCandidateStage(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/candidates/"+id+"/stage", `{"stage":"offer"}`))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})
}

func TestCreateCandidate(t *testing.T) {
	t.Run("invalid email rejected", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)

		app := fiber.New()
		app.Post("/api/candidates", CreateCandidate(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/candidates",
			`{"name":"Jordan Lee","email":"not-an-email"}`))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		require.Len(t, body.Error.Fields, 1)
		assert.Equal(t, "email", body.Error.Fields[0].Field)
	})

	t.Run("created", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)
		svc.On("Create", mock.Anything, mock.AnythingOfType("model.CandidateIn")).Return("c1", nil)

		app := fiber.New()
		app.Post("/api/candidates", CreateCandidate(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/candidates",
			`{"name":"Jordan Lee","email":"jordan@example.com"}`))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})
}

func TestUploadResume(t *testing.T) {
	id := uuid.NewString()

	multipartBody := func(t *testing.T) (*bytes.Buffer, string) {
		t.Helper()
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		fw, err := w.CreateFormFile("file", "resume.pdf")
		require.NoError(t, err)
		fw.Write([]byte("%PDF-1.4 dummy"))
		require.NoError(t, w.Close())
		return buf, w.FormDataContentType()
	}

	t.Run("ok", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)
		svc.On("AttachResume", mock.Anything, id, mock.Anything, "resume.pdf", mock.Anything, mock.Anything).
			Return(nil)

		app := fiber.New()
		app.Post("/api/candidates/:id/resume", UploadResume(svc))

		buf, ct := multipartBody(t)
		req := httptest.NewRequest(http.MethodPost, "/api/candidates/"+id+"/resume", buf)
		req.Header.Set("Content-Type", ct)

		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "/api/candidates/"+id+"/resume", body["resume_url"])
		svc.AssertExpectations(t)
	})

	t.Run("file missing", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)

		app := fiber.New()
		app.Post("/api/candidates/:id/resume", UploadResume(svc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/candidates/"+id+"/resume", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("storage disabled", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)
		svc.On("AttachResume", mock.Anything, id, mock.Anything, "resume.pdf", mock.Anything, mock.Anything).
			Return(service.ErrStorageDisabled)

		app := fiber.New()
		app.Post("/api/candidates/:id/resume", UploadResume(svc))

		buf, ct := multipartBody(t)
		req := httptest.NewRequest(http.MethodPost, "/api/candidates/"+id+"/resume", buf)
		req.Header.Set("Content-Type", ct)

		resp, _ := app.Test(req)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "STORAGE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestDownloadResume(t *testing.T) {
	id := uuid.NewString()

	t.Run("redirects to presigned url", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)
		svc.On("ResumeURL", mock.Anything, id).Return("https://objects.example.com/resumes/x.pdf?sig=abc", nil)

		app := fiber.New()
		app.Get("/api/candidates/:id/resume", DownloadResume(svc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/candidates/"+id+"/resume", nil))
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "https://objects.example.com/resumes/x.pdf?sig=abc", resp.Header.Get("Location"))
	})

	t.Run("no resume on file", func(t *testing.T) {
		svc := new(serviceMocks.MockCandidateService)
		svc.On("ResumeURL", mock.Anything, id).Return("", service.ErrNoResume)

		app := fiber.New()
		app.Get("/api/candidates/:id/resume", DownloadResume(svc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/candidates/"+id+"/resume", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCreateInterviewFeedback(t *testing.T) {
	id := uuid.NewString()

	t.Run("path id wins", func(t *testing.T) {
		svc := new(serviceMocks.MockInterviewService)
		svc.On("AddFeedback", mock.Anything, id, mock.AnythingOfType("model.FeedbackIn")).Return("fb1", nil)

		app := fiber.New()
		app.Post("/api/interviews/:id/feedback", CreateInterviewFeedback(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/interviews/"+id+"/feedback",
			`{"candidate_id":"c1","ratings":{"technical":4},"recommendation":"proceed","interview_id":"something-else"}`))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "fb1", body["id"])
		svc.AssertExpectations(t)
	})

	t.Run("missing ratings rejected", func(t *testing.T) {
		svc := new(serviceMocks.MockInterviewService)

		app := fiber.New()
		app.Post("/api/interviews/:id/feedback", CreateInterviewFeedback(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/interviews/"+id+"/feedback",
			`{"candidate_id":"c1"}`))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		svc.AssertNotCalled(t, "AddFeedback", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateOfferStatus(t *testing.T) {
	id := uuid.NewString()

	t.Run("ok", func(t *testing.T) {
		svc := new(serviceMocks.MockOfferService)
		svc.On("UpdateStatus", mock.Anything, id, model.OfferSent).Return(nil)

		app := fiber.New()
		app.Post("/api/offers/:id/status", UpdateOfferStatus(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/offers/"+id+"/status", `{"status":"sent"}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("status outside enum rejected", func(t *testing.T) {
		svc := new(serviceMocks.MockOfferService)

		app := fiber.New()
		app.Post("/api/offers/:id/status", UpdateOfferStatus(svc))

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/offers/"+id+"/status", `{"status":"rescinded"}`))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		svc.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetMetrics(t *testing.T) {
	svc := new(serviceMocks.MockMetricsService)
	svc.On("Metrics", mock.Anything).Return(&service.Metrics{
		TotalJobs:        2,
		ActiveCandidates: 3,
		OffersSent:       1,
		TimeToFill:       24,
	}, nil)

	app := fiber.New()
	app.Get("/api/metrics", GetMetrics(svc))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, 2, body["total_jobs"])
	assert.Equal(t, 3, body["active_candidates"])
	assert.Equal(t, 1, body["offers_sent"])
	assert.Equal(t, 24, body["time_to_fill"])
}

func TestGetAnalytics(t *testing.T) {
	svc := new(serviceMocks.MockMetricsService)
	svc.On("Analytics", mock.Anything).Return(&service.Analytics{
		Funnel:              service.Funnel{Applications: 3, Interviews: 1, Offers: 1, Hires: 0},
		AvgTimePerStage:     map[string]float64{"applied": 2.5},
		OfferAcceptanceRate: 0.72,
		TopSources:          []service.LeadSource{{Source: "LinkedIn", Count: 48}},
	}, nil)

	app := fiber.New()
	app.Get("/api/analytics", GetAnalytics(svc))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/analytics", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body service.Analytics
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, 3, body.Funnel.Applications)
	assert.Equal(t, 0.72, body.OfferAcceptanceRate)
}

func TestSeedDemoData(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := new(serviceMocks.MockSeeder)
		svc.On("Seed", mock.Anything).Return(nil)

		app := fiber.New()
		app.Post("/api/seed", SeedDemoData(svc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/seed", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("store unavailable", func(t *testing.T) {
		svc := new(serviceMocks.MockSeeder)
		svc.On("Seed", mock.Anything).Return(docstore.ErrUnavailable)

		app := fiber.New()
		app.Post("/api/seed", SeedDemoData(svc))

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/seed", nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "STORE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})

	svcs := Services{
		Jobs:       new(serviceMocks.MockJobService),
		Candidates: new(serviceMocks.MockCandidateService),
		Interviews: new(serviceMocks.MockInterviewService),
		Offers:     new(serviceMocks.MockOfferService),
		Onboarding: new(serviceMocks.MockOnboardingService),
		Messages:   new(serviceMocks.MockMessageService),
		Metrics:    new(serviceMocks.MockMetricsService),
		Seeder:     new(serviceMocks.MockSeeder),
	}
	RegisterRoutes(app, nil, docstore.NewPostgres(nil), svcs)

	t.Run("unknown route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/api/jobs", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("diagnostics degrade without database", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "running", body["backend"])
		assert.Equal(t, "not connected", body["connection_status"])
	})
}
