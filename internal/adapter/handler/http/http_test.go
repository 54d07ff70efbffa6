package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wimtiaz/user_registration_service/internal/core/domain"
	"github.com/wimtiaz/user_registration_service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDateLayout      = "02-01-2006"
	testTimestampLayout = "2006-01-02 15:04:05"
)

type fakeUserRepository struct {
	byEmail     map[string]*domain.User
	byID        map[int64]*domain.User
	nextID      int64
	createEmpty bool
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
		nextID:  1,
	}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createEmpty {
		return nil, nil
	}
	stored := *user
	stored.ID = r.nextID
	r.nextID++
	r.byEmail[stored.Email] = &stored
	r.byID[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.byEmail[email], nil
}

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(key string) ([]byte, error) {
	value, ok := c.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return value, nil
}

func (c *fakeCache) Set(key string, value []byte, _ time.Duration) error {
	c.data[key] = value
	return nil
}

func (c *fakeCache) Delete(key string) error {
	delete(c.data, key)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hashed, password string) error {
	if hashed == "hashed:"+password {
		return nil
	}
	return errors.New("mismatch")
}

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}
func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Warn(string, map[string]interface{})  {}

type nopMetrics struct{}

func (nopMetrics) IncrementCounter(string, map[string]string)              {}
func (nopMetrics) RecordDuration(string, time.Duration, map[string]string) {}
func (nopMetrics) RecordMetrics(*gin.Context, time.Time)                   {}

func newTestRouter(repo *fakeUserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userService := services.NewUserService(repo, fakeHasher{}, nopLogger{}, newFakeCache())
	handler := NewUserHandler(
		userService,
		services.NewSubmissionValidator(),
		services.NewMapper(testDateLayout),
		nopLogger{},
		nopMetrics{},
		testTimestampLayout,
	)

	router := gin.New()
	router.Use(RecoveryMiddleware(nopLogger{}, testTimestampLayout))
	v1 := router.Group("/v1")
	{
		v1.POST("/register", handler.Register)
		v1.GET("/users/:id", handler.GetUser)
	}
	return router
}

func validPayload() map[string]string {
	return map[string]string{
		"firstName":   "Waqas",
		"lastName":    "Imtiaz",
		"dateOfBirth": "10-10-1985",
		"email":       "waqas@gmail.com",
		"password":    "secret123",
		"sex":         "male",
		"country":     "france",
		"phoneNumber": "0981797848",
	}
}

func postRegister(t *testing.T, router *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func getUser(router *gin.Engine, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+id, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var response errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func decodeSuccess(t *testing.T, recorder *httptest.ResponseRecorder) successResponse {
	t.Helper()
	var response successResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

func TestRegister_CreatedWithRedactedPassword(t *testing.T) {
	router := newTestRouter(newFakeUserRepository())

	recorder := postRegister(t, router, validPayload())
	require.Equal(t, http.StatusCreated, recorder.Code)

	response := decodeSuccess(t, recorder)
	assert.Equal(t, http.StatusCreated, response.Status)
	assert.Equal(t, "/v1/users/1", response.ResourceURI)
	assert.NotEmpty(t, response.TimeStamp)

	view, ok := response.Object.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "*****", view["password"])
	assert.NotEqual(t, "secret123", view["password"])
	assert.Equal(t, "waqas@gmail.com", view["email"])
	assert.Equal(t, "MALE", view["sex"])
}

func TestRegister_ConstraintViolationsCollected(t *testing.T) {
	router := newTestRouter(newFakeUserRepository())

	payload := validPayload()
	payload["firstName"] = "W4qas"
	payload["country"] = "germany"

	recorder := postRegister(t, router, payload)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeConstraintViolation, response.ErrorNumber)
	assert.Equal(t, []string{
		"Invalid first name. Only characters are acceptable",
		"Invalid country. Only french residence can register",
	}, response.Messages)
	assert.NotEmpty(t, response.TimeStamp)
}

func TestRegister_SyntacticallyInvalidDateIsConstraintViolation(t *testing.T) {
	router := newTestRouter(newFakeUserRepository())

	payload := validPayload()
	payload["dateOfBirth"] = "1980/01/32"

	recorder := postRegister(t, router, payload)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeConstraintViolation, response.ErrorNumber)
}

func TestRegister_NonCalendarDateIsInputDateFormatError(t *testing.T) {
	router := newTestRouter(newFakeUserRepository())

	payload := validPayload()
	payload["dateOfBirth"] = "32-01-1980"

	recorder := postRegister(t, router, payload)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeInputDateFormat, response.ErrorNumber)
	assert.NotEmpty(t, response.DebugMessage)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router := newTestRouter(newFakeUserRepository())

	recorder := postRegister(t, router, validPayload())
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = postRegister(t, router, validPayload())
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeUserAlreadyExists, response.ErrorNumber)
	require.Len(t, response.Messages, 1)
	assert.Contains(t, response.Messages[0], "waqas@gmail.com")
}

func TestRegister_UnderAge(t *testing.T) {
	router := newTestRouter(newFakeUserRepository())

	payload := validPayload()
	payload["dateOfBirth"] = time.Now().AddDate(-10, 0, 0).Format(testDateLayout)

	recorder := postRegister(t, router, payload)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeUnderAge, response.ErrorNumber)
}

func TestRegister_EmptyCreateResultIsServerError(t *testing.T) {
	repo := newFakeUserRepository()
	repo.createEmpty = true
	router := newTestRouter(repo)

	recorder := postRegister(t, router, validPayload())
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeUserRegistrationFailed, response.ErrorNumber)
}

func TestRegister_MalformedBody(t *testing.T) {
	router := newTestRouter(newFakeUserRepository())

	req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeUnknownBadRequest, response.ErrorNumber)
}

func TestGetUser_ReturnsStoredView(t *testing.T) {
	router := newTestRouter(newFakeUserRepository())

	recorder := postRegister(t, router, validPayload())
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeSuccess(t, recorder)

	lookup := getUser(router, "1")
	require.Equal(t, http.StatusOK, lookup.Code)

	response := decodeSuccess(t, lookup)
	assert.Equal(t, http.StatusOK, response.Status)
	assert.Equal(t, "/v1/users/1", response.ResourceURI)
	assert.Equal(t, created.Object, response.Object)
}

func TestGetUser_UnknownID(t *testing.T) {
	router := newTestRouter(newFakeUserRepository())

	recorder := getUser(router, "999999")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeUserDoesNotExist, response.ErrorNumber)
	require.Len(t, response.Messages, 1)
	assert.Contains(t, response.Messages[0], "999999")
}

func TestGetUser_NegativeIDRejectedBeforeLookup(t *testing.T) {
	repo := newFakeUserRepository()
	router := newTestRouter(repo)

	recorder := getUser(router, "-5")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeConstraintViolation, response.ErrorNumber)
	assert.Equal(t, []string{"id cannot be negative"}, response.Messages)
}

func TestGetUser_MalformedID(t *testing.T) {
	router := newTestRouter(newFakeUserRepository())

	recorder := getUser(router, "abc")
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeConstraintViolation, response.ErrorNumber)
}

func TestRecoveryMiddleware_NilDereferenceIsUnknownBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoveryMiddleware(nopLogger{}, testTimestampLayout))
	router.GET("/panic", func(c *gin.Context) {
		var user *domain.User
		fmt.Fprint(c.Writer, user.Email)
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeUnknownBadRequest, response.ErrorNumber)
}

func TestRecoveryMiddleware_OtherPanicsAreInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoveryMiddleware(nopLogger{}, testTimestampLayout))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	response := decodeError(t, recorder)
	assert.Equal(t, domain.CodeUnknownInternalServerError, response.ErrorNumber)
}
