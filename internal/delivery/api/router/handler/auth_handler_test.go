package handler_test

import (
	"net/http"
	"testing"

	"bookshelf/internal/delivery/api/router/handler"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	mockUC "bookshelf/internal/mocks/usecase"
	"bookshelf/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*handler.AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC}), authUC
}

func TestAuthHandler_SignUp(t *testing.T) {
	h, authUC := newAuthHandler(t)

	authUC.EXPECT().
		SignUp(mock.Anything, &usecase.SignUpInput{Email: "ana@example.com", Password: "secret", Username: "ana"}).
		Return(&usecase.AuthOutput{Token: "signed", User: &entity.User{Username: "ana"}}, nil)

	c, rec := newContext(http.MethodPost, "/api/auth/signup", `{"email":"ana@example.com","password":"secret","userName":"ana"}`)
	require.NoError(t, h.SignUp(c))

	assertStatus(t, rec, http.StatusOK)
	body := decodeBody(t, rec)
	assert.Equal(t, "User logged in", body["message"])
	assert.Equal(t, "signed", body["token"])
	assert.Equal(t, "ana", body["name"])
}

func TestAuthHandler_SignUp_ShortPassword(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := newContext(http.MethodPost, "/api/auth/signup", `{"email":"ana@example.com","password":"12345","userName":"ana"}`)
	require.NoError(t, h.SignUp(c))

	assertStatus(t, rec, http.StatusBadRequest)
	body := decodeBody(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body["code"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].(map[string]any)["field"])
}

func TestAuthHandler_SignUp_EmailTaken(t *testing.T) {
	h, authUC := newAuthHandler(t)

	authUC.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	c, rec := newContext(http.MethodPost, "/api/auth/signup", `{"email":"ana@example.com","password":"secret","userName":"ana"}`)
	require.NoError(t, h.SignUp(c))

	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "USER_ALREADY_EXISTS", decodeBody(t, rec)["code"])
}

func TestAuthHandler_SignUp_MalformedBody(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := newContext(http.MethodPost, "/api/auth/signup", `{"email":`)
	require.NoError(t, h.SignUp(c))

	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "INVALID_INPUT", decodeBody(t, rec)["code"])
}

func TestAuthHandler_Login(t *testing.T) {
	h, authUC := newAuthHandler(t)

	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "secret"}).
		Return(&usecase.AuthOutput{
			Token: "signed",
			User:  &entity.User{Username: "ana", ProfilePictureURL: "https://img.example.com/ana.png"},
		}, nil)

	c, rec := newContext(http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"secret"}`)
	require.NoError(t, h.Login(c))

	assertStatus(t, rec, http.StatusOK)
	body := decodeBody(t, rec)
	assert.Equal(t, "signed", body["token"])
	assert.Equal(t, "ana", body["name"])
	assert.Equal(t, "https://img.example.com/ana.png", body["profilePictureUrl"])
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "unknown email", err: domainerrors.ErrUserNotFound, wantCode: http.StatusNotFound, wantErr: "USER_NOT_FOUND"},
		{name: "wrong password", err: domainerrors.ErrInvalidCredentials, wantCode: http.StatusUnauthorized, wantErr: "INVALID_CREDENTIALS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUC := newAuthHandler(t)
			authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, tt.err)

			c, rec := newContext(http.MethodPost, "/api/auth/login", `{"email":"ana@example.com","password":"secret"}`)
			require.NoError(t, h.Login(c))

			assertStatus(t, rec, tt.wantCode)
			assert.Equal(t, tt.wantErr, decodeBody(t, rec)["code"])
		})
	}
}
