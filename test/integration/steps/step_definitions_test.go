//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rentfolio/backend/internal/application/usecase/analytics"
	"github.com/rentfolio/backend/internal/application/usecase/auth"
	"github.com/rentfolio/backend/internal/application/usecase/document"
	"github.com/rentfolio/backend/internal/application/usecase/property"
	"github.com/rentfolio/backend/internal/application/usecase/report"
	"github.com/rentfolio/backend/internal/application/usecase/transaction"
	"github.com/rentfolio/backend/internal/application/usecase/usage"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
	"github.com/rentfolio/backend/internal/infra/server/router"
	"github.com/rentfolio/backend/internal/integration/adapters"
	"github.com/rentfolio/backend/internal/integration/entrypoint/controller"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
	"github.com/rentfolio/backend/internal/integration/persistence"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
	"github.com/rentfolio/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	currentUserID     uuid.UUID
	currentPropertyID uuid.UUID
	lastEntityID      uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":              &model.UserModel{},
			"properties":         &model.PropertyModel{},
			"transactions":       &model.TransactionModel{},
			"metric_entries":     &model.MetricEntryModel{},
			"property_snapshots": &model.PropertySnapshotModel{},
			"ai_analyses":        &model.AIAnalysisModel{},
			"report_records":     &model.ReportRecordModel{},
			"documents":          &model.DocumentModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^a user exists with email "([^"]*)" on the "([^"]*)" plan$`, test.aUserExistsWithEmailOnThePlan)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)

	// Portfolio setup steps
	ctx.Given(`^a property exists named "([^"]*)"$`, test.aPropertyExistsNamed)
	ctx.Given(`^a "([^"]*)" transaction exists of "([^"]*)" in category "([^"]*)" on "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^a "([^"]*)" transaction exists of "([^"]*)" with tax category "([^"]*)" on "([^"]*)"$`, test.aTransactionExistsWithTaxCategory)
	ctx.Given(`^a document exists named "([^"]*)"$`, test.aDocumentExistsNamed)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentPropertyID = uuid.Nil
	t.lastEntityID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			redisClient := mock.NewRedis()

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			propertyRepo := persistence.NewPropertyRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			metricRepo := persistence.NewMetricRepository(testDB.DbConn)
			analysisRepo := persistence.NewAnalysisRepository(testDB.DbConn)
			snapshotRepo := persistence.NewSnapshotRepository(testDB.DbConn)
			reportRepo := persistence.NewReportRepository(testDB.DbConn)
			documentRepo := persistence.NewDocumentRepository(testDB.DbConn)
			usageCounter := persistence.NewUsageRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, redisClient)
			aiService := adapters.NewGeminiService("")
			notifier := noopNotifier{}

			taxBuckets := valueobject.NewTaxBucketTable()
			planLimits := valueobject.NewPlanLimitTable()

			// Create use cases
			checkLimitsUseCase := usage.NewCheckLimitsUseCase(usageCounter, planLimits)

			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

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
				transactionRepo, propertyRepo, reportRepo, userRepo, notifier, taxBuckets)
			cashFlowUseCase := report.NewGetCashFlowUseCase(transactionRepo, propertyRepo, reportRepo)
			incomeStatementUseCase := report.NewGetIncomeStatementUseCase(
				transactionRepo, propertyRepo, reportRepo)

			overviewUseCase := analytics.NewGetOverviewUseCase(propertyRepo, transactionRepo)
			trendsUseCase := analytics.NewGetTrendsUseCase(metricRepo)
			performanceUseCase := analytics.NewGetPerformanceUseCase(metricRepo)
			snapshotsUseCase := analytics.NewListSnapshotsUseCase(snapshotRepo, propertyRepo)
			analysesUseCase := analytics.NewListAnalysesUseCase(analysisRepo)
			generateAnalysisUseCase := analytics.NewGenerateAnalysisUseCase(
				overviewUseCase, aiService, analysisRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(
				registerUseCase, loginUseCase, refreshUseCase, logoutUseCase)
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
				snapshotsUseCase, analysesUseCase, generateAnalysisUseCase)
			usageController := controller.NewUsageController(checkLimitsUseCase)

			// Create middleware
			authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)

			r := router.NewRouter(
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
			r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: r.Engine(),
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// noopNotifier satisfies the report notifier port without sending email.
type noopNotifier struct{}

func (noopNotifier) NotifyReportReady(context.Context, string, string, entity.ReportKind, int) error {
	return nil
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "free")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "free")
}

func (t *testContext) aUserExistsWithEmailOnThePlan(email, plan string) error {
	return t.createUser(email, "DefaultPass123!", plan)
}

func (t *testContext) createUser(email, password, plan string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         "Test User",
		PasswordHash: hashPassword(password),
		Plan:         plan,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := t.createUser(email, "DefaultPass123!", "free"); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return err
		}
	}
	t.currentUserID = userModel.ID

	// Issue a real token pair through the token service so the refresh
	// token lands in the redis mock.
	tokenService := adapters.NewTokenService(testJWTSecret, mock.NewRedis())
	pair, err := tokenService.GenerateTokenPair(context.Background(), userModel.ID, email)
	if err != nil {
		return fmt.Errorf("failed to issue token pair: %w", err)
	}
	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	return nil
}

func (t *testContext) aPropertyExistsNamed(name string) error {
	propertyID := uuid.New()
	t.currentPropertyID = propertyID

	now := time.Now().UTC()
	propertyModel := &model.PropertyModel{
		ID:            propertyID,
		UserID:        t.currentUserID,
		Name:          name,
		Address:       "1 Test Street",
		Type:          "single_family",
		PurchasePrice: decimal.NewFromInt(250000),
		Units:         1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return t.db.DbConn.Create(propertyModel).Error
}

func (t *testContext) aTransactionExists(txnType, amount, category, date string) error {
	return t.createTransaction(txnType, amount, category, nil, date)
}

func (t *testContext) aTransactionExistsWithTaxCategory(txnType, amount, taxCategory, date string) error {
	return t.createTransaction(txnType, amount, "General", &taxCategory, date)
}

func (t *testContext) createTransaction(txnType, amount, category string, taxCategory *string, date string) error {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	transactionID := uuid.New()
	t.lastEntityID = transactionID

	var propertyID *uuid.UUID
	if t.currentPropertyID != uuid.Nil {
		id := t.currentPropertyID
		propertyID = &id
	}

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:          transactionID,
		UserID:      t.currentUserID,
		PropertyID:  propertyID,
		Type:        txnType,
		Amount:      amt,
		Category:    category,
		Date:        day,
		TaxCategory: taxCategory,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) aDocumentExistsNamed(name string) error {
	documentID := uuid.New()
	t.lastEntityID = documentID

	now := time.Now().UTC()
	documentModel := &model.DocumentModel{
		ID:        documentID,
		UserID:    t.currentUserID,
		Name:      name,
		CreatedAt: now,
	}
	return t.db.DbConn.Create(documentModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{property_id}}", t.currentPropertyID.String())
	content = strings.ReplaceAll(content, "{{entity_id}}", t.lastEntityID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path
	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastEntityID = id
		}
	}
	if tokenStr, ok := responseBody["refresh_token"].(string); ok && tokenStr != "" {
		t.refreshToken = tokenStr
	}
	if tokenStr, ok := responseBody["access_token"].(string); ok && tokenStr != "" {
		t.accessToken = tokenStr
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)",
			expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	if value := getFieldValue(body, field); value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := t.db.DbConn.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	objectMap, ok := object.(map[string]any)
	if !ok {
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
