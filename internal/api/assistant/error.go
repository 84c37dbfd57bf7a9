package assistant

import (
	"ProjectRoameo/pkg/response"
	"net/http"
)

var (
	ErrEmptyMessage      = response.NewError(http.StatusBadRequest, "message cannot be empty")
	ErrInvalidFAQPayload = response.NewError(http.StatusBadRequest, "invalid faq payload")
	ErrDuplicateFAQID    = response.NewError(http.StatusBadRequest, "duplicate faq id")
	ErrFAQStoreFailure   = response.NewError(http.StatusInternalServerError, "failed to persist faq entries")
)
