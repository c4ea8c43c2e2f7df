package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"localia/internal/domain/entity"
	domainerrors "localia/internal/domain/errors"
	mockUsecase "localia/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newKeyedRequest(t *testing.T, header, value string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/businesses", nil)
	req.Header.Set(header, value)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAPIKeyMiddleware_Validate_AuditStatus(t *testing.T) {
	t.Parallel()

	identity := &entity.APIKeyIdentity{
		KeyID:         uuid.New(),
		ApplicationID: uuid.New(),
		Scopes:        []string{"read"},
	}

	cases := []struct {
		name       string
		handler    echo.HandlerFunc
		wantStatus int
		wantErr    bool
	}{
		{
			name: "success keeps the written status",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]bool{"ok": true})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "app error records its http code",
			handler: func(c echo.Context) error {
				return domainerrors.ErrAPIKeyInvalid
			},
			wantStatus: http.StatusUnauthorized,
			wantErr:    true,
		},
		{
			name: "wrapped app error still resolves",
			handler: func(c echo.Context) error {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "lookup")
			},
			wantStatus: http.StatusNotFound,
			wantErr:    true,
		},
		{
			name: "echo http error records its code",
			handler: func(c echo.Context) error {
				return echo.ErrMethodNotAllowed
			},
			wantStatus: http.StatusMethodNotAllowed,
			wantErr:    true,
		},
		{
			name: "unclassified error records 500",
			handler: func(c echo.Context) error {
				return errors.New("connection reset")
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			apiKeyUC := mockUsecase.NewMockAPIKeyUsecase(t)
			apiKeyUC.EXPECT().ValidateKey(mock.Anything, "localia_key").Return(identity, nil)

			var recorded *entity.APIRequestLog
			apiKeyUC.EXPECT().
				RecordRequest(mock.Anything, mock.AnythingOfType("*entity.APIRequestLog")).
				Run(func(_ context.Context, logEntry *entity.APIRequestLog) {
					recorded = logEntry
				})

			m := NewAPIKeyMiddleware(apiKeyUC)
			c, _ := newKeyedRequest(t, "X-API-Key", "localia_key")

			err := m.Validate(tc.handler)(c)

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.NotNil(t, recorded)
			assert.Equal(t, tc.wantStatus, recorded.StatusCode)
			assert.Equal(t, identity.KeyID, *recorded.APIKeyID)
			assert.Equal(t, "/businesses", recorded.Path)
			if tc.wantErr {
				assert.NotEmpty(t, recorded.ErrorMessage)
			}
		})
	}
}

func TestAPIKeyMiddleware_ExtractAPIKey(t *testing.T) {
	t.Parallel()

	identity := &entity.APIKeyIdentity{KeyID: uuid.New()}

	okHandler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	}

	t.Run("accepts the ApiKey authorization scheme", func(t *testing.T) {
		t.Parallel()

		apiKeyUC := mockUsecase.NewMockAPIKeyUsecase(t)
		apiKeyUC.EXPECT().ValidateKey(mock.Anything, "localia_scheme").Return(identity, nil)
		apiKeyUC.EXPECT().RecordRequest(mock.Anything, mock.AnythingOfType("*entity.APIRequestLog"))

		m := NewAPIKeyMiddleware(apiKeyUC)
		c, _ := newKeyedRequest(t, "Authorization", "ApiKey localia_scheme")

		require.NoError(t, m.Validate(okHandler)(c))
	})

	t.Run("accepts the Bearer authorization scheme", func(t *testing.T) {
		t.Parallel()

		apiKeyUC := mockUsecase.NewMockAPIKeyUsecase(t)
		apiKeyUC.EXPECT().ValidateKey(mock.Anything, "localia_bearer").Return(identity, nil)
		apiKeyUC.EXPECT().RecordRequest(mock.Anything, mock.AnythingOfType("*entity.APIRequestLog"))

		m := NewAPIKeyMiddleware(apiKeyUC)
		c, _ := newKeyedRequest(t, "Authorization", "Bearer localia_bearer")

		require.NoError(t, m.Validate(okHandler)(c))
	})

	t.Run("missing key is rejected before the handler", func(t *testing.T) {
		t.Parallel()

		apiKeyUC := mockUsecase.NewMockAPIKeyUsecase(t)
		apiKeyUC.EXPECT().ValidateKey(mock.Anything, "").Return(nil, domainerrors.ErrAPIKeyMissing)

		m := NewAPIKeyMiddleware(apiKeyUC)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/businesses", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		err := m.Validate(okHandler)(c)

		require.ErrorIs(t, err, domainerrors.ErrAPIKeyMissing)
	})
}
