package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"localia/internal/delivery/http/middleware"
	"localia/internal/delivery/http/validator"
	"localia/internal/domain/entity"
	mockUsecase "localia/internal/mocks/usecase"
	"localia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newKeyedJSONContext(method, target, body string, identity *entity.APIKeyIdentity) echo.Context {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	c := e.NewContext(req, httptest.NewRecorder())
	if identity != nil {
		c.Set(middleware.ContextKeyAPIIdentity, identity)
	}

	return c
}

func TestAPIKeyHandler_CreateApplication_RecordsIssuer(t *testing.T) {
	t.Parallel()

	issuerKey := uuid.New()
	identity := &entity.APIKeyIdentity{
		KeyID:         issuerKey,
		ApplicationID: uuid.New(),
		Scopes:        []string{"admin"},
	}

	apiKeyUC := mockUsecase.NewMockAPIKeyUsecase(t)

	var captured *usecase.CreateApplicationInput
	apiKeyUC.EXPECT().
		CreateApplication(mock.Anything, mock.AnythingOfType("*usecase.CreateApplicationInput")).
		Run(func(_ context.Context, input *usecase.CreateApplicationInput) {
			captured = input
		}).
		Return(&entity.APIApplication{ID: uuid.New(), Name: "Merchant App"}, nil)

	h := NewAPIKeyHandler(apiKeyUC)
	c := newKeyedJSONContext(http.MethodPost, "/api-keys/applications",
		`{"name":"Merchant App","app_type":"mobile","platform":"android"}`, identity)

	require.NoError(t, h.CreateApplication(c))

	require.NotNil(t, captured)
	require.NotNil(t, captured.CreatedBy, "new applications must carry the issuing key")
	assert.Equal(t, issuerKey, *captured.CreatedBy)
}

func TestAPIKeyHandler_CreateKey_RecordsIssuer(t *testing.T) {
	t.Parallel()

	issuerKey := uuid.New()
	applicationID := uuid.New()
	identity := &entity.APIKeyIdentity{KeyID: issuerKey, ApplicationID: applicationID}

	apiKeyUC := mockUsecase.NewMockAPIKeyUsecase(t)

	var captured *usecase.CreateKeyInput
	apiKeyUC.EXPECT().
		CreateKey(mock.Anything, mock.AnythingOfType("*usecase.CreateKeyInput")).
		Run(func(_ context.Context, input *usecase.CreateKeyInput) {
			captured = input
		}).
		Return(&usecase.IssuedKey{PlainKey: "localia_abc", Key: &entity.APIKey{ID: uuid.New()}}, nil)

	h := NewAPIKeyHandler(apiKeyUC)
	c := newKeyedJSONContext(http.MethodPost, "/api-keys",
		`{"application_id":"`+applicationID.String()+`","name":"backend key"}`, identity)

	require.NoError(t, h.CreateKey(c))

	require.NotNil(t, captured)
	require.NotNil(t, captured.CreatedBy)
	assert.Equal(t, issuerKey, *captured.CreatedBy)
	assert.Equal(t, applicationID, captured.ApplicationID)
}

func TestAPIKeyHandler_CreateApplication_NoIdentity(t *testing.T) {
	t.Parallel()

	apiKeyUC := mockUsecase.NewMockAPIKeyUsecase(t)

	var captured *usecase.CreateApplicationInput
	apiKeyUC.EXPECT().
		CreateApplication(mock.Anything, mock.AnythingOfType("*usecase.CreateApplicationInput")).
		Run(func(_ context.Context, input *usecase.CreateApplicationInput) {
			captured = input
		}).
		Return(&entity.APIApplication{ID: uuid.New()}, nil)

	h := NewAPIKeyHandler(apiKeyUC)
	c := newKeyedJSONContext(http.MethodPost, "/api-keys/applications",
		`{"name":"Bootstrap","app_type":"internal"}`, nil)

	require.NoError(t, h.CreateApplication(c))

	require.NotNil(t, captured)
	assert.Nil(t, captured.CreatedBy)
}
