package errs

import (
	"errors"
	"net/http"
)

type Error string

func (e Error) Error() string { return string(e) }

// Authentication failures (401).
const (
	ErrNoToken            = Error("no token provided")
	ErrInvalidToken       = Error("invalid token")
	ErrInvalidCredentials = Error("invalid credentials")
	ErrWrongPassword      = Error("current password is incorrect")
)

// Validation failures (400).
const (
	ErrInvalidRequestBody        = Error("invalid request body")
	ErrInvalidParams             = Error("invalid params")
	ErrAllFieldsRequired         = Error("all fields are required")
	ErrEmailAndPasswordRequired  = Error("email and password are required")
	ErrEmailAlreadyExists        = Error("email already exists")
	ErrInvalidEmail              = Error("invalid email address")
	ErrInvalidPassword           = Error("password must be at least 8 characters")
	ErrFirstNameTooShort         = Error("first name is empty or too short")
	ErrLastNameTooShort          = Error("last name is empty or too short")
	ErrReceiverAndContentMissing = Error("receiver and content required")
	ErrTitleRequired             = Error("title is required")
	ErrCategoryRequired          = Error("category is required")
	ErrContentRequired           = Error("content is required")
	ErrRatingOutOfRange          = Error("rating must be between 1 and 5")
	ErrSelfReview                = Error("cannot review yourself")
	ErrDuplicateReview           = Error("you have already reviewed this transaction")
)

// Missing referenced entities (404).
const (
	ErrUserNotFound         = Error("user not found")
	ErrDealNotFound         = Error("deal not found")
	ErrEventNotFound        = Error("event not found")
	ErrPostNotFound         = Error("post not found")
	ErrNotificationNotFound = Error("notification not found")
)

var statusByError = map[Error]int{
	ErrNoToken:            http.StatusUnauthorized,
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrWrongPassword:      http.StatusUnauthorized,

	ErrInvalidRequestBody:        http.StatusBadRequest,
	ErrInvalidParams:             http.StatusBadRequest,
	ErrAllFieldsRequired:         http.StatusBadRequest,
	ErrEmailAndPasswordRequired:  http.StatusBadRequest,
	ErrEmailAlreadyExists:        http.StatusBadRequest,
	ErrInvalidEmail:              http.StatusBadRequest,
	ErrInvalidPassword:           http.StatusBadRequest,
	ErrFirstNameTooShort:         http.StatusBadRequest,
	ErrLastNameTooShort:          http.StatusBadRequest,
	ErrReceiverAndContentMissing: http.StatusBadRequest,
	ErrTitleRequired:             http.StatusBadRequest,
	ErrCategoryRequired:          http.StatusBadRequest,
	ErrContentRequired:           http.StatusBadRequest,
	ErrRatingOutOfRange:          http.StatusBadRequest,
	ErrSelfReview:                http.StatusBadRequest,
	ErrDuplicateReview:           http.StatusBadRequest,

	ErrUserNotFound:         http.StatusNotFound,
	ErrDealNotFound:         http.StatusNotFound,
	ErrEventNotFound:        http.StatusNotFound,
	ErrPostNotFound:         http.StatusNotFound,
	ErrNotificationNotFound: http.StatusNotFound,
}

// Status maps a service error to its HTTP status. Anything outside the
// taxonomy is a store failure and surfaces as 500.
func Status(err error) int {
	var e Error
	if errors.As(err, &e) {
		if status, ok := statusByError[e]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}
