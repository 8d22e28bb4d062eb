package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/goalline/academy-backend-go/internal/handler/http/middleware"
	"github.com/goalline/academy-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	athleteHandler AthleteHandler,
	staffHandler StaffHandler,
	batchHandler BatchHandler,
	attendanceHandler AttendanceHandler,
	billingHandler BillingHandler,
	expenseHandler ExpenseHandler,
	dashboardHandler DashboardHandler,
	cronSecret string,
	appEnv string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "goalline-academy"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// External scheduler trigger, guarded by a shared secret rather
		// than JWT auth.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireCronSecret(cronSecret))
			r.Post("/billing/run", billingHandler.RunCycle)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/athletes", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/", athleteHandler.List)
					r.Get("/{id}", athleteHandler.GetByID)
					r.Get("/{id}/subscriptions", athleteHandler.ListSubscriptions)
					r.Get("/{id}/attendance", attendanceHandler.ListByAthlete)
					r.Get("/{id}/attendance/summary", athleteHandler.AttendanceSummary)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", athleteHandler.Create)
					r.Put("/{id}", athleteHandler.Update)
					r.Delete("/{id}", athleteHandler.Delete)
				})
			})

			r.Route("/staff", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", staffHandler.List)
				r.Post("/", staffHandler.Create)
				r.Get("/{id}", staffHandler.GetByID)
				r.Put("/{id}", staffHandler.Update)
				r.Delete("/{id}", staffHandler.Delete)
			})

			r.Route("/batches", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/", batchHandler.List)
					r.Get("/{id}", batchHandler.GetByID)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", batchHandler.Create)
					r.Delete("/{id}", batchHandler.Delete)
				})
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Get("/", batchHandler.ListSessions)
				r.Patch("/{id}/status", batchHandler.UpdateSessionStatus)
				r.Post("/{id}/attendance", attendanceHandler.Mark)
				r.Get("/{id}/attendance", attendanceHandler.ListBySession)
			})

			r.Route("/plans", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/", billingHandler.ListPlans)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", billingHandler.CreatePlan)
					r.Put("/{id}", billingHandler.UpdatePlan)
					r.Delete("/{id}", billingHandler.ArchivePlan)
				})
			})

			r.Route("/subscriptions", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", billingHandler.Enroll)
				r.Post("/{id}/cancel", billingHandler.CancelSubscription)
			})

			r.Route("/invoices", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/", billingHandler.ListInvoices)
					r.Get("/{invoiceNumber}", billingHandler.GetInvoice)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/{invoiceNumber}/payments", billingHandler.RecordPayment)
					r.Post("/{invoiceNumber}/apply-coupon", billingHandler.ApplyCoupon)
					r.Post("/{invoiceNumber}/cancel", billingHandler.CancelInvoice)
				})
			})

			r.Route("/coupons", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", billingHandler.ListCoupons)
				r.Post("/", billingHandler.CreateCoupon)
				r.Post("/{id}/void", billingHandler.VoidCoupon)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", expenseHandler.List)
				r.Post("/", expenseHandler.Create)
				r.Get("/totals", expenseHandler.MonthlyTotals)
				r.Get("/{id}", expenseHandler.GetByID)
				r.Delete("/{id}", expenseHandler.Delete)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)
				r.Get("/dashboard", dashboardHandler.Summary)
			})
		})
	})
	return r
}
