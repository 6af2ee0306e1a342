package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clauselens/contract-review-api/internal/database"
	"github.com/clauselens/contract-review-api/internal/middleware"
	"github.com/clauselens/contract-review-api/internal/models"
	"github.com/clauselens/contract-review-api/internal/repository"
	"github.com/clauselens/contract-review-api/internal/services"
	"github.com/clauselens/contract-review-api/internal/storage"
)

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	summarizer  *fakeSummarizer
	fileStore   *fakeStorage
}

// fakeSummarizer stands in for the OpenAI collaborator.
type fakeSummarizer struct {
	summary string
	err     error
}

func (f *fakeSummarizer) SummarizeClause(ctx context.Context, clauseText string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

// fakeStorage keeps uploaded objects in memory.
type fakeStorage struct {
	objects map[string][]byte
}

func (f *fakeStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://files.test/contract-files/" + key
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Contract{},
		&models.Annotation{},
		&models.Summary{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	contractRepo := repository.NewContractRepository(db)
	annotationRepo := repository.NewAnnotationRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	summarizer := &fakeSummarizer{summary: "Summarized."}
	fileStore := &fakeStorage{objects: map[string][]byte{}}

	authService := services.NewAuthService(userRepo, []byte("test-secret"))
	contractService := services.NewContractService(contractRepo, contractRepo, fileStore)
	annotationService := services.NewAnnotationService(annotationRepo, contractRepo)
	summaryService := services.NewSummaryService(summaryRepo, contractRepo, summarizer)

	authHandler := NewAuthHandler(authService)
	contractHandler := NewContractHandler(contractService)
	annotationHandler := NewAnnotationHandler(annotationService)
	summaryHandler := NewSummaryHandler(summaryService)

	r := gin.New()
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/me", middleware.RequireAuth(authService), authHandler.GetCurrentUser)

	contracts := r.Group("/contracts")
	contracts.Use(middleware.RequireAuth(authService))
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("", contractHandler.ListContracts)
		contracts.GET("/:id", middleware.RequireContractAccess(), contractHandler.GetContract)
		contracts.PUT("/:id", middleware.RequireContractAccess(), contractHandler.UpdateContract)
		contracts.DELETE("/:id", middleware.RequireContractAccess(), contractHandler.DeleteContract)

		contracts.POST("/:id/upload", middleware.RequireContractAccess(), contractHandler.UploadContractFile)

		contracts.GET("/:id/annotations", middleware.RequireContractAccess(), annotationHandler.ListAnnotations)
		contracts.POST("/:id/annotations", middleware.RequireContractAccess(), annotationHandler.CreateAnnotation)
		contracts.PUT("/:id/annotations/:aid", middleware.RequireContractAccess(), annotationHandler.UpdateAnnotation)
		contracts.DELETE("/:id/annotations/:aid", middleware.RequireContractAccess(), annotationHandler.DeleteAnnotation)

		contracts.GET("/:id/summaries", middleware.RequireContractAccess(), summaryHandler.ListSummaries)
		contracts.POST("/:id/summaries", middleware.RequireContractAccess(), summaryHandler.CreateSummary)
		contracts.DELETE("/:id/summaries/:sid", middleware.RequireContractAccess(), summaryHandler.DeleteSummary)
	}

	return testEnv{
		db:          db,
		router:      r,
		authService: authService,
		summarizer:  summarizer,
		fileStore:   fileStore,
	}
}

// doJSON issues a JSON request against the test router.
func (env testEnv) doJSON(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// signup registers a user through the API and returns the issued token.
func (env testEnv) signup(t *testing.T, email string) string {
	t.Helper()

	w := env.doJSON(t, http.MethodPost, "/signup", "", map[string]string{
		"email":    email,
		"password": "supersecret",
		"name":     "Test User",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return response.Token
}

// createContract creates a contract through the API and returns it decoded.
func (env testEnv) createContract(t *testing.T, token, title, text string) models.Contract {
	t.Helper()

	w := env.doJSON(t, http.MethodPost, "/contracts", token, map[string]string{
		"title": title,
		"text":  text,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var contract models.Contract
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contract))
	return contract
}

var errSummarizerDown = errors.New("summarizer unreachable")
