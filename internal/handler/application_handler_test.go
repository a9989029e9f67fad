package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mispadamapur/school-api/internal/middleware"
	"github.com/mispadamapur/school-api/internal/repository"
	"github.com/mispadamapur/school-api/internal/service"
	"github.com/mispadamapur/school-api/internal/utils"
)

var appColumns = []string{
	"id", "student_name", "date_of_birth", "gender", "class_applying",
	"father_name", "mother_name", "parent_phone", "parent_email", "address",
	"previous_school", "message", "status", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

// newTestRouter mirrors the route layout in cmd/api: the intake endpoint
// is public, everything under /api/admin/applications sits behind the
// JWT middleware.
func newTestRouter(t *testing.T, db *sqlx.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewApplicationHandler(service.NewApplicationService(repository.NewApplicationRepository(db)))
	jwtMiddleware := middleware.NewJWTMiddleware()

	router := gin.New()
	router.POST("/api/applications", h.Submit)

	admin := router.Group("/api/admin")
	admin.Use(jwtMiddleware.Handle())
	admin.GET("/applications", h.List)
	admin.GET("/applications/export", h.Export)
	admin.PATCH("/applications/:id/status", h.UpdateStatus)
	admin.DELETE("/applications/:id", h.Delete)
	admin.DELETE("/applications", h.DeleteAll)
	return router
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateJWT(1, "admin@mis.com")
	require.NoError(t, err)
	return token
}

func TestApplicationHandler_Submit(t *testing.T) {
	utils.InitJWT("handler-test-secret")

	t.Run("Created", func(t *testing.T) {
		db, mock := newMockDB(t)
		router := newTestRouter(t, db)

		mock.ExpectQuery("INSERT INTO admissions").
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at", "updated_at"}).
				AddRow(12, "pending", time.Now(), time.Now()))

		body := `{"studentName":"Asha","dateOfBirth":"2015-04-01","classApplying":"II",
			"parentName":"Rao","parentPhone":"9990001111","parentEmail":"rao@example.com"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/applications", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"success":true,"id":12}`, w.Body.String())
	})

	t.Run("MissingField", func(t *testing.T) {
		db, _ := newMockDB(t)
		router := newTestRouter(t, db)

		body := `{"studentName":"Asha","dateOfBirth":"2015-04-01","classApplying":"II",
			"parentName":"Rao","parentPhone":"9990001111"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/applications", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"parentEmail is required"}`, w.Body.String())
	})

	t.Run("InvalidBody", func(t *testing.T) {
		db, _ := newMockDB(t)
		router := newTestRouter(t, db)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/applications", strings.NewReader("not json"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
	})
}

func TestApplicationHandler_AdminRoutesRequireToken(t *testing.T) {
	utils.InitJWT("handler-test-secret")
	db, _ := newMockDB(t)
	router := newTestRouter(t, db)

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/admin/applications"},
		{"GET", "/api/admin/applications/export"},
		{"PATCH", "/api/admin/applications/1/status"},
		{"DELETE", "/api/admin/applications/1"},
		{"DELETE", "/api/admin/applications"},
	} {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(route.method, route.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
		})
	}
}

func TestApplicationHandler_List(t *testing.T) {
	utils.InitJWT("handler-test-secret")

	t.Run("BareArray", func(t *testing.T) {
		db, mock := newMockDB(t)
		router := newTestRouter(t, db)

		mock.ExpectQuery("SELECT (.+) FROM admissions ORDER BY created_at DESC").
			WillReturnRows(sqlmock.NewRows(appColumns))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/admin/applications", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		// An empty result is still a bare array, never null or an envelope.
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("InvalidStatusFilter", func(t *testing.T) {
		db, _ := newMockDB(t)
		router := newTestRouter(t, db)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/admin/applications?status=archived", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken(t))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid status filter"}`, w.Body.String())
	})
}

func TestApplicationHandler_Export(t *testing.T) {
	utils.InitJWT("handler-test-secret")
	db, mock := newMockDB(t)
	router := newTestRouter(t, db)

	mock.ExpectQuery("SELECT (.+) FROM admissions ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(appColumns))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/applications/export", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="applications.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "id,studentName,dob,classApplying,parentName,parentPhone,parentEmail,address,message,createdAt", w.Body.String())
}

func TestApplicationHandler_UpdateStatus(t *testing.T) {
	utils.InitJWT("handler-test-secret")

	t.Run("InvalidID", func(t *testing.T) {
		db, _ := newMockDB(t)
		router := newTestRouter(t, db)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/api/admin/applications/abc/status", strings.NewReader(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken(t))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid id"}`, w.Body.String())
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		db, _ := newMockDB(t)
		router := newTestRouter(t, db)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/api/admin/applications/1/status", strings.NewReader(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken(t))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"status must be one of pending, approved, rejected"}`, w.Body.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		router := newTestRouter(t, db)

		mock.ExpectQuery("UPDATE admissions").
			WithArgs(int64(404), "approved").
			WillReturnRows(sqlmock.NewRows(appColumns))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/api/admin/applications/404/status", strings.NewReader(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken(t))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	})
}

func TestApplicationHandler_Delete(t *testing.T) {
	utils.InitJWT("handler-test-secret")
	db, mock := newMockDB(t)
	router := newTestRouter(t, db)

	mock.ExpectExec("DELETE FROM admissions WHERE id").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/admin/applications/3", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}
