package services

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"hive/configs"
	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/repositories"
	"hive/internal/servers/database"
)

func newAuthServiceFixture(t *testing.T) *AuthenticationService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewAuthenticationService(repositories.NewAuthenticationRepository(db), configs.GetConfig())
}

func validRegistration() *models.RegisterRequestBody {
	return &models.RegisterRequestBody{
		Email:     "alice@example.com",
		Password:  "password123",
		FirstName: "Alice",
		LastName:  "Ames",
	}
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	service := newAuthServiceFixture(t)

	response, err := service.Register(validRegistration())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Token == "" || response.User == nil {
		t.Fatalf("incomplete auth response: %+v", response)
	}

	claims, err := service.VerifyToken(response.Token)
	if err != nil {
		t.Fatalf("freshly issued token must verify: %v", err)
	}
	if claims.ID != response.User.ID || claims.Email != "alice@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestRegisterValidation(t *testing.T) {
	service := newAuthServiceFixture(t)

	cases := []struct {
		name    string
		mutate  func(body *models.RegisterRequestBody)
		wantErr error
	}{
		{"missing email", func(b *models.RegisterRequestBody) { b.Email = "" }, errs.ErrAllFieldsRequired},
		{"bad email", func(b *models.RegisterRequestBody) { b.Email = "not-an-email" }, errs.ErrInvalidEmail},
		{"short password", func(b *models.RegisterRequestBody) { b.Password = "short" }, errs.ErrInvalidPassword},
		{"short first name", func(b *models.RegisterRequestBody) { b.FirstName = "A" }, errs.ErrFirstNameTooShort},
		{"short last name", func(b *models.RegisterRequestBody) { b.LastName = "B" }, errs.ErrLastNameTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validRegistration()
			tc.mutate(body)
			_, err := service.Register(body)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := newAuthServiceFixture(t)

	if _, err := service.Register(validRegistration()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := service.Register(validRegistration())
	if !errors.Is(err, errs.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	service := newAuthServiceFixture(t)
	if _, err := service.Register(validRegistration()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	response, err := service.Login(&models.LoginRequestBody{Email: "alice@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Token == "" {
		t.Fatal("expected token on successful login")
	}

	_, err = service.Login(&models.LoginRequestBody{Email: "alice@example.com", Password: "wrong-password"})
	if !errors.Is(err, errs.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	// Unknown accounts and wrong passwords are indistinguishable.
	_, err = service.Login(&models.LoginRequestBody{Email: "nobody@example.com", Password: "password123"})
	if !errors.Is(err, errs.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	_, err = service.Login(&models.LoginRequestBody{Email: "", Password: ""})
	if !errors.Is(err, errs.ErrEmailAndPasswordRequired) {
		t.Fatalf("expected ErrEmailAndPasswordRequired, got %v", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	service := newAuthServiceFixture(t)

	_, err := service.VerifyToken("not.a.jwt")
	if !errors.Is(err, errs.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
