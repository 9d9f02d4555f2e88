package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bhojanbuddy/backend/internal/api"
	"github.com/bhojanbuddy/backend/internal/service"
	"github.com/bhojanbuddy/backend/internal/testhelpers"
)

// stubClassifier returns a fixed candidate list so handler tests can steer
// the confidence gate without a live inference service.
type stubClassifier struct {
	candidates []service.Candidate
}

func (s *stubClassifier) Classify(ctx context.Context, image []byte) ([]service.Candidate, error) {
	return s.candidates, nil
}

type testEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	classifier *stubClassifier
	feedback   *service.FeedbackLog
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	images, err := service.NewLocalImageStore(t.TempDir())
	require.NoError(t, err)
	uploads, err := service.NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	classifier := &stubClassifier{}
	catalog := service.NewNutritionCatalog(map[string]service.NutritionFacts{
		"samosa": {"calories": 262, "protein": 3.5},
	})
	feedback := service.NewFeedbackLog(filepath.Join(t.TempDir(), "feedback.json"))

	router := gin.New()
	root := router.Group("")
	api.NewAuthHandler(authSvc, nil).RegisterRoutes(root)
	api.NewUserHandler(service.NewUserService(db), authSvc).RegisterRoutes(root)
	api.NewBMIHandler(service.NewBMIService(db), authSvc).RegisterRoutes(root)
	api.NewFoodHandler(service.NewFoodService(db, images), authSvc).RegisterRoutes(root)
	api.NewPredictHandler(service.NewPredictService(classifier, catalog, uploads), nil).RegisterRoutes(root)
	api.NewFeedbackHandler(feedback).RegisterRoutes(root)

	return &testEnv{
		router:     router,
		db:         db,
		classifier: classifier,
		feedback:   feedback,
	}
}

// registerTestUser registers a user through the API and returns their id and
// a valid bearer token.
func (e *testEnv) registerTestUser(t *testing.T, email string) (userID, token string) {
	t.Helper()

	resp := e.doJSON(t, http.MethodPost, "/auth/register", "", gin.H{
		"email":     email,
		"full_name": "Test User",
		"password":  "password123",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var body api.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	require.NotEmpty(t, body.UserID)
	return body.UserID, body.Token
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	e.router.ServeHTTP(resp, req)
	return resp
}

func (e *testEnv) doGet(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	e.router.ServeHTTP(resp, req)
	return resp
}

// multipartBody builds a multipart form from fields, optionally attaching an
// image file under the "image" key.
func multipartBody(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func (e *testEnv) doMultipart(t *testing.T, path, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	e.router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}
