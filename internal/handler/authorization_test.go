package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/campushq/placement-api/internal/dto"
	"github.com/campushq/placement-api/internal/service"
)

func authorized(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestStudentTokenReachesStudentRoutes(t *testing.T) {
	app, db := setupSecuredApp(t)

	student := seedHandlerStudent(t, db, "asha@uni.edu")
	job := seedHandlerJob(t, db, "Nimbus Systems", "Backend Engineer")
	token := signTestToken(t, student.ID, service.RoleStudent)

	resp, err := app.Test(authorized(jsonRequest(t, "GET", fmt.Sprintf("/api/jobs/eligible/%d", student.ID), nil), token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authorized(jsonRequest(t, "GET", fmt.Sprintf("/api/applications/student/%d", student.ID), nil), token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authorized(jsonRequest(t, "GET", fmt.Sprintf("/api/students/%d/skills", student.ID), nil), token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authorized(jsonRequest(t, "POST", "/api/applications/apply", dto.ApplyRequest{
		StudentID: student.ID, JobID: job.ID,
	}), token))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestStudentTokenCannotReachAdminRoutes(t *testing.T) {
	app, db := setupSecuredApp(t)

	student := seedHandlerStudent(t, db, "curious@uni.edu")
	token := signTestToken(t, student.ID, service.RoleStudent)

	for _, route := range []struct {
		method string
		path   string
	}{
		{"GET", "/api/admin/pending-students"},
		{"GET", "/api/admin/stats"},
		{"GET", "/api/students"},
		{"GET", "/api/applications/all"},
		{"GET", "/api/applications/pending"},
		{"PUT", fmt.Sprintf("/api/admin/approve-student/%d", student.ID)},
	} {
		resp, err := app.Test(authorized(jsonRequest(t, route.method, route.path, nil), token))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode, "%s %s", route.method, route.path)
	}
}

func TestAdminTokenReachesWholeSurface(t *testing.T) {
	app, db := setupSecuredApp(t)

	student := seedHandlerStudent(t, db, "roster@uni.edu")
	token := signTestToken(t, 1, service.RoleAdmin)

	// The admin role also satisfies the student guard.
	for _, path := range []string{
		"/api/admin/pending-students",
		"/api/students",
		"/api/applications/all",
		fmt.Sprintf("/api/jobs/eligible/%d", student.ID),
	} {
		resp, err := app.Test(authorized(jsonRequest(t, "GET", path, nil), token))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestGuardedRoutesRequireToken(t *testing.T) {
	app, db := setupSecuredApp(t)

	student := seedHandlerStudent(t, db, "anon@uni.edu")

	resp, err := app.Test(jsonRequest(t, "GET", fmt.Sprintf("/api/jobs/eligible/%d", student.ID), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "GET", "/api/admin/stats", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Public routes stay open.
	resp, err = app.Test(jsonRequest(t, "GET", "/api/branches", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "GET", "/api/health", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
