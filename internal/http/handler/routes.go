package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"atsapi/internal/docstore"
	"atsapi/internal/service"
)

// Services bundles every use-case dependency the HTTP surface needs.
type Services struct {
	Jobs       service.JobService
	Candidates service.CandidateService
	Interviews service.InterviewService
	Offers     service.OfferService
	Onboarding service.OnboardingService
	Messages   service.MessageService
	Metrics    service.MetricsService
	Seeder     service.Seeder
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers stay
// thin; business rules live in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, store docstore.Store, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/", Root())
	app.Get("/test", TestDiagnostics(db, store))
	app.Get("/schema", SchemaInfo())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/hello", Hello())
	api.Post("/seed", SeedDemoData(svcs.Seeder))
	api.Get("/metrics", GetMetrics(svcs.Metrics))
	api.Get("/analytics", GetAnalytics(svcs.Metrics))

	api.Get("/jobs", ListJobs(svcs.Jobs))
	api.Post("/jobs", CreateJob(svcs.Jobs))

	api.Get("/candidates", ListCandidates(svcs.Candidates))
	api.Post("/candidates", CreateCandidate(svcs.Candidates))
	api.Post("/candidates/:id/stage", UpdateCandidateStage(svcs.Candidates))
	api.Post("/candidates/:id/resume", UploadResume(svcs.Candidates))
	api.Get("/candidates/:id/resume", DownloadResume(svcs.Candidates))

	api.Get("/interviews", ListInterviews(svcs.Interviews))
	api.Post("/interviews", CreateInterview(svcs.Interviews))
	api.Post("/interviews/:id/feedback", CreateInterviewFeedback(svcs.Interviews))

	api.Get("/offers", ListOffers(svcs.Offers))
	api.Post("/offers", CreateOffer(svcs.Offers))
	api.Post("/offers/:id/status", UpdateOfferStatus(svcs.Offers))

	api.Get("/onboarding", ListOnboardingTasks(svcs.Onboarding))
	api.Post("/onboarding", CreateOnboardingTask(svcs.Onboarding))

	api.Get("/messages", ListMessages(svcs.Messages))
	api.Post("/messages", CreateMessage(svcs.Messages))
}
