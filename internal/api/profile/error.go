package profile

import (
	"ProjectRoameo/pkg/response"
	"net/http"
)

var (
	ErrUserNotFound      = response.NewError(http.StatusNotFound, "user not found")
	ErrEmailAlreadyInUse = response.NewError(http.StatusConflict, "email is already in use")
	ErrWrongOldPassword  = response.NewError(http.StatusUnauthorized, "old password is incorrect")
	ErrPasswordUnchanged = response.NewError(http.StatusBadRequest, "new password must differ from the old one")
	ErrInvalidAvatarFile = response.NewError(http.StatusBadRequest, "avatar file is invalid")
	ErrAvatarProcessing  = response.NewError(http.StatusUnprocessableEntity, "failed to process avatar image")
)
