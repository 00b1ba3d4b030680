package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/battlearena/battlearena/internal/domain"
	"github.com/battlearena/battlearena/internal/service/authservice"
	"github.com/battlearena/battlearena/pkg/auth"
	"github.com/battlearena/battlearena/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"phone":"+919876543210","username":"rahul","game_name":"ProGamer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "+919876543210", "rahul", "ProGamer", "password123").Return(&domain.User{
					ID:   1,
					Role: auth.RoleUser,
				}, nil)
				service.EXPECT().GenerateToken(1, auth.RoleUser).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Phone already registered",
			body: `{"phone":"+919876543210","username":"rahul","game_name":"ProGamer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "+919876543210", "rahul", "ProGamer", "password123").
					Return(nil, authservice.ErrPhoneTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrPhoneTaken.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid phone number",
			body:          `{"phone":"12345","username":"rahul","game_name":"ProGamer","password":"password123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid phone number",
		},
		{
			name:          "Password too short",
			body:          `{"phone":"+919876543210","username":"rahul","game_name":"ProGamer","password":"short"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "password must be at least 8 characters",
		},
		{
			name: "Error generating token",
			body: `{"phone":"+919876543210","username":"rahul","game_name":"ProGamer","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "+919876543210", "rahul", "ProGamer", "password123").Return(&domain.User{
					ID:   1,
					Role: auth.RoleUser,
				}, nil)
				service.EXPECT().GenerateToken(1, auth.RoleUser).Return("", assert.AnError)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Register(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rec.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"phone":"+919876543210","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "+919876543210", "password123").Return(&domain.User{
					ID:   1,
					Role: auth.RoleUser,
				}, nil)
				service.EXPECT().GenerateToken(1, auth.RoleUser).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Invalid credentials",
			body: `{"phone":"+919876543210","password":"wrongpass"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "+919876543210", "wrongpass").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Banned account",
			body: `{"phone":"+919876543210","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "+919876543210", "password123").
					Return(nil, authservice.ErrBanned)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: authservice.ErrBanned.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rec.Header().Get("Authorization"))
			}
		})
	}
}
