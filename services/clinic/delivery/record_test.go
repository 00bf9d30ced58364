package delivery

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"clinic/config"
	"clinic/domain"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const juanBody = `{"first_name":"Juan","last_name":"Perez","date_of_birth":"1980-01-01",
	"contact_number":"1234567890","email":"juan@example.com","address":"123 Main St","medical_history":"None"}`

// Compile-time check to ensure mockPatientUC implements RecordUseCase
var _ domain.RecordUseCase[domain.Patient] = (*mockPatientUC)(nil)

type mockPatientUC struct {
	CreateFunc  func(ctx context.Context, rec *domain.Patient) error
	GetAllFunc  func(ctx context.Context) (*[]domain.Patient, error)
	GetByIDFunc func(ctx context.Context, id int) (*domain.Patient, error)
	UpdateFunc  func(ctx context.Context, id int, rec *domain.Patient) error
	DeleteFunc  func(ctx context.Context, id int) error

	UpdateCallCount int32
}

func (m *mockPatientUC) CreateRecord(ctx context.Context, rec *domain.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rec)
	}
	rec.ID = 1
	return nil
}

func (m *mockPatientUC) GetAllRecords(ctx context.Context) (*[]domain.Patient, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return &[]domain.Patient{}, nil
}

func (m *mockPatientUC) GetRecordByID(ctx context.Context, id int) (*domain.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockPatientUC) UpdateRecord(ctx context.Context, id int, rec *domain.Patient) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, rec)
	}
	rec.ID = id
	return nil
}

func (m *mockPatientUC) DeleteRecord(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func newTestApp(uc domain.RecordUseCase[domain.Patient]) *fiber.App {
	app := fiber.New(config.GetFiberConfig())
	NewPatientDelivery(app, uc)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string, headers ...string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestRecordHandler_List(t *testing.T) {
	uc := &mockPatientUC{
		GetAllFunc: func(ctx context.Context) (*[]domain.Patient, error) {
			return &[]domain.Patient{{ID: 1, FirstName: "Juan"}, {ID: 2, FirstName: "Ana"}}, nil
		},
	}

	status, body := do(t, newTestApp(uc), http.MethodGet, "/patients/", "")
	assert.Equal(t, http.StatusOK, status)

	var got []map[string]interface{}
	require.NoError(t, sonic.UnmarshalString(body, &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "Ana", got[1]["first_name"])
}

func TestRecordHandler_ListWithoutTrailingSlash(t *testing.T) {
	status, body := do(t, newTestApp(&mockPatientUC{}), http.MethodGet, "/patients", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)
}

func TestRecordHandler_ListStoreFailure(t *testing.T) {
	uc := &mockPatientUC{
		GetAllFunc: func(ctx context.Context) (*[]domain.Patient, error) {
			return nil, errors.New("connection refused")
		},
	}

	status, body := do(t, newTestApp(uc), http.MethodGet, "/patients/", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "connection refused")
	assert.Contains(t, body, `"success":false`)
}

func TestRecordHandler_Create(t *testing.T) {
	status, body := do(t, newTestApp(&mockPatientUC{}), http.MethodPost, "/patients/", juanBody)
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":1,"first_name":"Juan","last_name":"Perez","date_of_birth":"1980-01-01",
		"contact_number":"1234567890","email":"juan@example.com","address":"123 Main St","medical_history":"None"}`, body)
}

func TestRecordHandler_CreateMissingEmail(t *testing.T) {
	uc := &mockPatientUC{
		CreateFunc: func(ctx context.Context, rec *domain.Patient) error {
			t.Error("store must not be reached with an invalid payload")
			return nil
		},
	}
	payload := strings.Replace(juanBody, `"email":"juan@example.com",`, "", 1)

	status, body := do(t, newTestApp(uc), http.MethodPost, "/patients/", payload)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"email":["This field is required."]}`, body)
}

func TestRecordHandler_CreateStoreValidationError(t *testing.T) {
	uc := &mockPatientUC{
		CreateFunc: func(ctx context.Context, rec *domain.Patient) error {
			return domain.ValidationError{"first_name": {"Ensure this field has no more than 100 characters."}}
		},
	}

	status, body := do(t, newTestApp(uc), http.MethodPost, "/patients/", juanBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"first_name":["Ensure this field has no more than 100 characters."]}`, body)
}

func TestRecordHandler_Retrieve(t *testing.T) {
	uc := &mockPatientUC{
		GetByIDFunc: func(ctx context.Context, id int) (*domain.Patient, error) {
			if id != 3 {
				return nil, domain.ErrNotFound
			}
			return &domain.Patient{ID: 3, FirstName: "Juan", DateOfBirth: domain.NewDate(1980, time.January, 1)}, nil
		},
	}
	app := newTestApp(uc)

	status, body := do(t, app, http.MethodGet, "/patients/3/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"date_of_birth":"1980-01-01"`)

	status, body = do(t, app, http.MethodGet, "/patients/4/", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Empty(t, body)

	status, _ = do(t, app, http.MethodGet, "/patients/abc/", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRecordHandler_UpdateUnknownIDIsNotFoundEvenWithBadBody(t *testing.T) {
	uc := &mockPatientUC{}

	status, body := do(t, newTestApp(uc), http.MethodPut, "/patients/9/", `{"first_name":""}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Empty(t, body)
	assert.Equal(t, int32(0), atomic.LoadInt32(&uc.UpdateCallCount))
}

func TestRecordHandler_Update(t *testing.T) {
	uc := &mockPatientUC{
		GetByIDFunc: func(ctx context.Context, id int) (*domain.Patient, error) {
			return &domain.Patient{ID: id}, nil
		},
	}
	app := newTestApp(uc)

	status, body := do(t, app, http.MethodPut, "/patients/5/", juanBody)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"id":5`)

	status, body = do(t, app, http.MethodPut, "/patients/5/", `{"first_name":"Juan"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "last_name")
}

func TestRecordHandler_Delete(t *testing.T) {
	uc := &mockPatientUC{
		DeleteFunc: func(ctx context.Context, id int) error {
			if id == 1 {
				return nil
			}
			return domain.ErrNotFound
		},
	}
	app := newTestApp(uc)

	status, body := do(t, app, http.MethodDelete, "/patients/1/", "")
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, body)

	status, _ = do(t, app, http.MethodDelete, "/patients/2/", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPatientDeliveryDeploy_RequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New(config.GetFiberConfig())
	NewPatientDeliveryDeploy(app, &mockPatientUC{})

	status, _ := do(t, app, http.MethodGet, "/patients/", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, app, http.MethodGet, "/patients/", "", fiber.HeaderAuthorization, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, status)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &domain.Claims{
		Username: "nurse",
		Role:     "staff",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	status, body := do(t, app, http.MethodGet, "/patients/", "", fiber.HeaderAuthorization, "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)

	guest, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &domain.Claims{
		Username: "visitor",
		Role:     "guest",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	status, _ = do(t, app, http.MethodGet, "/patients/", "", fiber.HeaderAuthorization, "Bearer "+guest)
	assert.Equal(t, http.StatusForbidden, status)
}
