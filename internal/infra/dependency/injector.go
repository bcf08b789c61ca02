package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rentfolio/backend/config"
	"github.com/rentfolio/backend/internal/application/usecase/analytics"
	"github.com/rentfolio/backend/internal/application/usecase/auth"
	"github.com/rentfolio/backend/internal/application/usecase/document"
	"github.com/rentfolio/backend/internal/application/usecase/property"
	"github.com/rentfolio/backend/internal/application/usecase/report"
	"github.com/rentfolio/backend/internal/application/usecase/transaction"
	"github.com/rentfolio/backend/internal/application/usecase/usage"
	"github.com/rentfolio/backend/internal/domain/valueobject"
	"github.com/rentfolio/backend/internal/integration/adapters"
	"github.com/rentfolio/backend/internal/integration/email"
	"github.com/rentfolio/backend/internal/integration/entrypoint/controller"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
	"github.com/rentfolio/backend/internal/integration/persistence"
	"github.com/rentfolio/backend/internal/infra/server/router"
)

// Injector holds the application's wired dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector builds the full dependency graph: repositories, services,
// use cases, controllers, middleware and the router.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	dbHealthChecker func() bool,
) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	propertyRepo := persistence.NewPropertyRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	metricRepo := persistence.NewMetricRepository(db)
	analysisRepo := persistence.NewAnalysisRepository(db)
	snapshotRepo := persistence.NewSnapshotRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	documentRepo := persistence.NewDocumentRepository(db)
	usageCounter := persistence.NewUsageRepository(db)

	// Create services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, redisClient)
	aiService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	reportNotifier := email.NewResendNotifier(
		cfg.Email.ResendAPIKey,
		cfg.Email.FromName,
		cfg.Email.FromEmail,
	)

	// Domain tables
	taxBuckets := valueobject.NewTaxBucketTable()
	planLimits := valueobject.NewPlanLimitTable()

	// Create use cases
	checkLimitsUseCase := usage.NewCheckLimitsUseCase(usageCounter, planLimits)

	registerUserUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUserUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUserUseCase := auth.NewLogoutUserUseCase(tokenService)

	createPropertyUseCase := property.NewCreatePropertyUseCase(propertyRepo, checkLimitsUseCase)
	listPropertiesUseCase := property.NewListPropertiesUseCase(propertyRepo)
	getPropertyUseCase := property.NewGetPropertyUseCase(propertyRepo)
	updatePropertyUseCase := property.NewUpdatePropertyUseCase(propertyRepo)
	deletePropertyUseCase := property.NewDeletePropertyUseCase(propertyRepo)

	createTransactionUseCase := transaction.NewCreateTransactionUseCase(
		transactionRepo, propertyRepo, checkLimitsUseCase)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	registerDocumentUseCase := document.NewRegisterDocumentUseCase(
		documentRepo, propertyRepo, checkLimitsUseCase)
	listDocumentsUseCase := document.NewListDocumentsUseCase(documentRepo)

	profitLossUseCase := report.NewGetProfitLossUseCase(
		transactionRepo, propertyRepo, reportRepo, taxBuckets)
	taxReportUseCase := report.NewGetTaxReportUseCase(
		transactionRepo, propertyRepo, reportRepo, userRepo, reportNotifier, taxBuckets)
	cashFlowUseCase := report.NewGetCashFlowUseCase(transactionRepo, propertyRepo, reportRepo)
	incomeStatementUseCase := report.NewGetIncomeStatementUseCase(
		transactionRepo, propertyRepo, reportRepo)

	overviewUseCase := analytics.NewGetOverviewUseCase(propertyRepo, transactionRepo)
	trendsUseCase := analytics.NewGetTrendsUseCase(metricRepo)
	performanceUseCase := analytics.NewGetPerformanceUseCase(metricRepo)
	listSnapshotsUseCase := analytics.NewListSnapshotsUseCase(snapshotRepo, propertyRepo)
	listAnalysesUseCase := analytics.NewListAnalysesUseCase(analysisRepo)
	generateAnalysisUseCase := analytics.NewGenerateAnalysisUseCase(
		overviewUseCase, aiService, analysisRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(
		registerUserUseCase, loginUserUseCase, refreshTokenUseCase, logoutUserUseCase)
	propertyController := controller.NewPropertyController(
		createPropertyUseCase, listPropertiesUseCase, getPropertyUseCase,
		updatePropertyUseCase, deletePropertyUseCase)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase, listTransactionsUseCase,
		updateTransactionUseCase, deleteTransactionUseCase)
	documentController := controller.NewDocumentController(
		registerDocumentUseCase, listDocumentsUseCase)
	reportController := controller.NewReportController(
		profitLossUseCase, taxReportUseCase, cashFlowUseCase, incomeStatementUseCase)
	analyticsController := controller.NewAnalyticsController(
		overviewUseCase, trendsUseCase, performanceUseCase,
		listSnapshotsUseCase, listAnalysesUseCase, generateAnalysisUseCase)
	usageController := controller.NewUsageController(checkLimitsUseCase)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	appRouter := router.NewRouter(
		healthController,
		authController,
		propertyController,
		transactionController,
		documentController,
		reportController,
		analyticsController,
		usageController,
		authMiddleware,
		loginRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: appRouter,
	}
}
