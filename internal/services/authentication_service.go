package services

import (
	"time"

	"hive/configs"
	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/repositories"
	"hive/internal/utils"
	"hive/internal/validators"
)

const nearbyUsersLimit = 20

type AuthenticationService struct {
	authRepo      *repositories.AuthenticationRepository
	jwtSecret     []byte
	jwtExpiration time.Duration
}

func NewAuthenticationService(authRepo *repositories.AuthenticationRepository, config *configs.Config) *AuthenticationService {
	return &AuthenticationService{
		authRepo:      authRepo,
		jwtSecret:     []byte(config.Viper.GetString("jwt.secret")),
		jwtExpiration: time.Duration(config.Viper.GetInt("jwt.expiration_time")) * time.Second,
	}
}

func (as *AuthenticationService) Register(body *models.RegisterRequestBody) (*models.AuthResponse, error) {
	if err := validators.ValidateRegistration(body); err != nil {
		return nil, err
	}

	exists, err := as.authRepo.EmailExists(body.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrEmailAlreadyExists
	}

	passwordHash, err := utils.HashPassword(body.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        body.Email,
		PasswordHash: passwordHash,
		FirstName:    body.FirstName,
		LastName:     body.LastName,
	}
	if err := as.authRepo.CreateUser(user); err != nil {
		return nil, err
	}

	return as.issueToken(user)
}

func (as *AuthenticationService) Login(body *models.LoginRequestBody) (*models.AuthResponse, error) {
	if body.Email == "" || body.Password == "" {
		return nil, errs.ErrEmailAndPasswordRequired
	}

	user, err := as.authRepo.GetUserByEmail(body.Email)
	if err != nil {
		if err == errs.ErrUserNotFound {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.CompareHashAndPassword(user.PasswordHash, body.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return as.issueToken(user)
}

// VerifyToken is the identity collaborator's verify(token) -> user contract.
func (as *AuthenticationService) VerifyToken(token string) (*models.Claims, error) {
	claims, err := utils.VerifyToken(token, as.jwtSecret)
	if err != nil {
		return nil, errs.ErrInvalidToken
	}
	return claims, nil
}

func (as *AuthenticationService) Me(userID uint) (*models.ProfileResponse, error) {
	user, err := as.authRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return user.ToProfileResponse(), nil
}

func (as *AuthenticationService) UpdateProfile(userID uint, body *models.UpdateProfileRequestBody) error {
	if body.FirstName == "" || body.LastName == "" {
		return errs.ErrAllFieldsRequired
	}
	return as.authRepo.UpdateProfile(userID, body)
}

func (as *AuthenticationService) ChangePassword(userID uint, body *models.ChangePasswordRequestBody) error {
	user, err := as.authRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if err := utils.CompareHashAndPassword(user.PasswordHash, body.CurrentPassword); err != nil {
		return errs.ErrWrongPassword
	}
	if !validators.ValidatePassword(body.NewPassword) {
		return errs.ErrInvalidPassword
	}
	passwordHash, err := utils.HashPassword(body.NewPassword)
	if err != nil {
		return err
	}
	return as.authRepo.UpdatePasswordHash(userID, passwordHash)
}

func (as *AuthenticationService) GetPublicUser(userID uint) (*models.UserResponse, error) {
	user, err := as.authRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return user.ToUserResponse(), nil
}

func (as *AuthenticationService) ListNearbyUsers(userID uint) ([]models.UserResponse, error) {
	users, err := as.authRepo.ListRecentUsers(userID, nearbyUsersLimit)
	if err != nil {
		return nil, err
	}
	responses := []models.UserResponse{}
	for _, user := range users {
		responses = append(responses, *user.ToUserResponse())
	}
	return responses, nil
}

func (as *AuthenticationService) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, err := utils.CreateJwtToken(
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		as.jwtSecret,
		time.Now().Add(as.jwtExpiration),
	)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		Token: token,
		User:  user.ToProfileResponse(),
	}, nil
}
