package login

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AgendaService/internal/service/users"
	"github.com/m04kA/SMC-AgendaService/internal/service/users/models"
	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type fakeService struct{ err error }

func (f fakeService) Login(_ context.Context, email string, _ string) (*models.LoginResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.LoginResponse{
		Token: "jwt",
		User:  &models.UserResponse{ID: "u1", Name: "Alice", Email: email, Role: "user"},
	}, nil
}

func post(svc fakeService, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))
	return w
}

func TestHandle(t *testing.T) {
	w := post(fakeService{}, `{"email":"alice@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"jwt"`)
	assert.Contains(t, w.Body.String(), `"email":"alice@example.com"`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, post(fakeService{}, `{"email":"alice@example.com"}`).Code)

	tests := []struct {
		err  error
		want int
	}{
		{users.ErrInvalidCredentials, http.StatusUnauthorized},
		{users.ErrTimeout, http.StatusGatewayTimeout},
		{users.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := post(fakeService{err: fmt.Errorf("%w: x", tt.err)}, `{"email":"a@b.c","password":"secret1"}`)
		assert.Equal(t, tt.want, w.Code, tt.err.Error())
	}
}
