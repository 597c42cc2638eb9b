package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campushq/placement-api/internal/config"
	"github.com/campushq/placement-api/internal/handler"
	"github.com/campushq/placement-api/internal/middleware"
	"github.com/campushq/placement-api/internal/models"
	"github.com/campushq/placement-api/internal/repository"
	"github.com/campushq/placement-api/internal/router"
	"github.com/campushq/placement-api/internal/service"
)

const testSecret = "handler-test-secret"

func setupHandlerDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Branch{},
		&models.Skill{},
		&models.Company{},
		&models.Student{},
		&models.Job{},
		&models.Application{},
		&models.Offer{},
		&models.PlacementOfficer{},
	))

	return db
}

func newDependencies(db *gorm.DB) router.Dependencies {
	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)

	studentRepo := repository.NewStudentRepository(db)
	officerRepo := repository.NewOfficerRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	authService := service.NewAuthService(studentRepo, officerRepo, validate, testSecret, time.Hour, service.BootstrapAdmin{}, logger)
	lookupService := service.NewLookupService(lookupRepo)
	jobService := service.NewJobService(jobRepo, studentRepo, applicationRepo, logger)
	applicationService := service.NewApplicationService(applicationRepo, studentRepo, jobRepo, validate, logger)
	adminService := service.NewAdminService(studentRepo, statsRepo, nil, time.Minute, logger)
	studentService := service.NewStudentService(studentRepo, logger)

	return router.Dependencies{
		AuthHandler:        handler.NewAuthHandler(authService, logger),
		LookupHandler:      handler.NewLookupHandler(lookupService, logger),
		JobHandler:         handler.NewJobHandler(jobService, logger),
		ApplicationHandler: handler.NewApplicationHandler(applicationService, logger),
		AdminHandler:       handler.NewAdminHandler(adminService, logger),
		StudentHandler:     handler.NewStudentHandler(studentService, logger),
	}
}

// setupApp wires the full route surface over an in-memory database. The JWT
// middleware is replaced with a stub that grants the admin role so every
// guarded route is reachable; the real token and role guard chain is covered
// by the authorization tests.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupHandlerDB(t)
	deps := newDependencies(db)
	deps.JWTMiddleware = func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(1))
		c.Locals("user_role", service.RoleAdmin)
		return c.Next()
	}

	app := fiber.New()
	router.Register(app, config.Config{AppName: "Test", JWTSecret: testSecret}, deps)

	return app, db
}

// setupSecuredApp wires the same surface with the real JWT middleware, so
// requests need a signed bearer token.
func setupSecuredApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupHandlerDB(t)
	deps := newDependencies(db)
	deps.JWTMiddleware = middleware.JWTProtected(testSecret)

	app := fiber.New()
	router.Register(app, config.Config{AppName: "Test", JWTSecret: testSecret}, deps)

	return app, db
}

func signTestToken(t *testing.T, subject uint, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", subject),
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func seedHandlerStudent(t *testing.T, db *gorm.DB, email string) models.Student {
	t.Helper()

	branch := models.Branch{Code: "CSE", Name: "Computer Science"}
	require.NoError(t, db.FirstOrCreate(&branch, models.Branch{Code: "CSE"}).Error)

	student := models.Student{
		Name:         "Asha Verma",
		Email:        email,
		BranchCode:   branch.Code,
		BatchYear:    2026,
		CGPA:         8.4,
		PasswordHash: "x",
		Status:       models.StudentStatusApproved,
	}
	require.NoError(t, db.Create(&student).Error)

	return student
}

func seedHandlerJob(t *testing.T, db *gorm.DB, company, title string) models.Job {
	t.Helper()

	c := models.Company{Name: company}
	require.NoError(t, db.Create(&c).Error)

	job := models.Job{
		CompanyID:   c.ID,
		Title:       title,
		CTCLPA:      14,
		MinCGPA:     7,
		MaxBacklogs: 0,
	}
	require.NoError(t, db.Create(&job).Error)

	return job
}
