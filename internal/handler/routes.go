package handler

import (
	"mindflow/internal/middleware"
	"mindflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles every route handler of the API.
type Handlers struct {
	Assessment *AssessmentHandler
	Jhana      *JhanaHandler
	Learning   *LearningHandler
	Routine    *RoutineHandler
	Dashboard  *DashboardHandler
}

// RegisterRoutes mounts the API under router (normally the /api group).
func RegisterRoutes(router fiber.Router, h Handlers, limiter service.RateLimiter) {
	vm := middleware.NewValidationMiddleware()
	requireUser := vm.RequireUserID()
	bodyUser := vm.RequireBodyUserID()

	router.Get("/", HealthCheck)

	router.Post("/assessment/submit",
		middleware.RateLimit(limiter, "assessment"),
		vm.ValidateAssessmentBody(),
		h.Assessment.SubmitAssessment)
	router.Get("/users/:id", vm.ValidatePathID("id"), h.Assessment.GetUser)

	router.Post("/jhana/sessions", bodyUser, h.Jhana.CreateSession)
	router.Get("/jhana/sessions", requireUser, h.Jhana.ListSessions)
	router.Get("/jhana/stats", requireUser, h.Jhana.GetStats)

	router.Get("/learning/cards", requireUser, h.Learning.ListCards)
	router.Post("/learning/cards", bodyUser, h.Learning.CreateCard)
	router.Put("/learning/cards/:id/review", vm.ValidatePathID("id"), h.Learning.ReviewCard)

	router.Get("/pomodoro/sessions", requireUser, h.Learning.ListPomodoros)
	router.Post("/pomodoro/sessions", bodyUser, h.Learning.CreatePomodoro)

	router.Get("/routines", requireUser, h.Routine.ListRoutines)
	router.Post("/routines", bodyUser, h.Routine.CreateRoutine)
	router.Put("/routines/:id", vm.ValidatePathID("id"), h.Routine.UpdateRoutine)
	router.Post("/routines/:id/complete", vm.ValidatePathID("id"), h.Routine.CompleteRoutine)

	router.Get("/dashboard", requireUser, h.Dashboard.GetDashboard)
}
