package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"session-manager/app/domain"
	mock_port "session-manager/app/mocks"
)

func TestProfileHandler_UpdateProfile(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*mock_port.MockSessionManager)
		wantStatus int
	}{
		{
			name: "successful update",
			body: `{"display_name":"New Name","theme":"dark"}`,
			setupMocks: func(m *mock_port.MockSessionManager) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, update domain.ProfileUpdate) (*domain.Profile, error) {
						require.NotNil(t, update.DisplayName)
						require.NotNil(t, update.Theme)
						assert.Equal(t, "New Name", *update.DisplayName)
						assert.Equal(t, domain.ThemeDark, *update.Theme)
						return &domain.Profile{ID: uuid.New(), DisplayName: "New Name", Theme: domain.ThemeDark}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unauthenticated",
			body: `{"display_name":"New Name"}`,
			setupMocks: func(m *mock_port.MockSessionManager) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrNotAuthenticated)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unsupported theme rejected by validation",
			body:       `{"theme":"sepia"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty update rejected",
			body: `{}`,
			setupMocks: func(m *mock_port.MockSessionManager) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrEmptyUpdate)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions := mock_port.NewMockSessionManager(ctrl)
			presenter := mock_port.NewMockThemePresenter(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(sessions)
			}

			handler := NewProfileHandler(sessions, presenter, testLogger())
			c, rec := newJSONContext(http.MethodPut, "/v1/user/profile", tt.body)

			require.NoError(t, handler.UpdateProfile(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestProfileHandler_ApplyTheme(t *testing.T) {
	t.Run("applies and reports the active theme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mock_port.NewMockSessionManager(ctrl)
		presenter := mock_port.NewMockThemePresenter(ctrl)

		sessions.EXPECT().ApplyTheme(domain.ThemeAuto)
		presenter.EXPECT().ActiveTheme().Return(domain.ThemeDark)

		handler := NewProfileHandler(sessions, presenter, testLogger())
		c, rec := newJSONContext(http.MethodPost, "/v1/user/theme", `{"theme":"auto"}`)

		require.NoError(t, handler.ApplyTheme(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"active":"dark"`)
	})

	t.Run("rejects unsupported theme", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sessions := mock_port.NewMockSessionManager(ctrl)
		presenter := mock_port.NewMockThemePresenter(ctrl)

		handler := NewProfileHandler(sessions, presenter, testLogger())
		c, rec := newJSONContext(http.MethodPost, "/v1/user/theme", `{"theme":"sepia"}`)

		require.NoError(t, handler.ApplyTheme(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
