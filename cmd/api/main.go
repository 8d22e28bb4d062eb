package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/goalline/academy-backend-go/internal/config"
	appHTTP "github.com/goalline/academy-backend-go/internal/handler/http"
	"github.com/goalline/academy-backend-go/internal/pkg/cron"
	"github.com/goalline/academy-backend-go/internal/pkg/database"
	"github.com/goalline/academy-backend-go/internal/pkg/email"
	"github.com/goalline/academy-backend-go/internal/pkg/jwt"
	"github.com/goalline/academy-backend-go/internal/pkg/oauth"
	"github.com/goalline/academy-backend-go/internal/repository/postgresql"
	athleteService "github.com/goalline/academy-backend-go/internal/service/athlete"
	attendanceService "github.com/goalline/academy-backend-go/internal/service/attendance"
	serviceAuth "github.com/goalline/academy-backend-go/internal/service/auth"
	batchService "github.com/goalline/academy-backend-go/internal/service/batch"
	billingService "github.com/goalline/academy-backend-go/internal/service/billing"
	dashboardService "github.com/goalline/academy-backend-go/internal/service/dashboard"
	expenseService "github.com/goalline/academy-backend-go/internal/service/expense"
	staffService "github.com/goalline/academy-backend-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	athleteRepo := postgresql.NewAthleteRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	batchRepo := postgresql.NewBatchRepository(db)
	scheduleRuleRepo := postgresql.NewScheduleRuleRepository(db)
	trainingSessionRepo := postgresql.NewTrainingSessionRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	planRepo := postgresql.NewPlanRepository(db)
	subscriptionRepo := postgresql.NewSubscriptionRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	couponRepo := postgresql.NewCouponRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	contactReader := postgresql.NewAthleteContactReader(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	// Google login stays disabled when the OAuth2 client is not configured.
	var GoogleService oauth.GoogleService
	if cfg.GoogleLoginEnabled() {
		GoogleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := serviceAuth.NewAuthService(db, userRepo, refreshTokenRepo, JWTService, GoogleService)
	athleteSvc := athleteService.NewAthleteService(db, athleteRepo)
	staffSvc := staffService.NewStaffService(db, staffRepo, userRepo, emailService, cfg.App.BaseURL)
	batchSvc := batchService.NewBatchService(db, batchRepo, scheduleRuleRepo, trainingSessionRepo, staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, trainingSessionRepo)
	billingSvc := billingService.NewBillingService(db, planRepo, subscriptionRepo, invoiceRepo, couponRepo, athleteRepo, contactReader, emailService)
	expenseSvc := expenseService.NewExpenseService(expenseRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	scheduler := cron.NewScheduler()
	cron.NewBillingJobs(billingSvc, cfg.Billing.RunInterval).RegisterJobs(scheduler)
	cron.NewSessionJobs(batchSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	athleteHandler := appHTTP.NewAthleteHandler(athleteSvc, billingSvc, attendanceSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	batchHandler := appHTTP.NewBatchHandler(batchSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	billingHandler := appHTTP.NewBillingHandler(billingSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		athleteHandler,
		staffHandler,
		batchHandler,
		attendanceHandler,
		billingHandler,
		expenseHandler,
		dashboardHandler,
		cfg.Billing.CronSecret,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
