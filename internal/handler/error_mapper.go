package handler

import (
	"errors"

	"github.com/forgo/worldforge/api/internal/model"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes across the API. The raw store error never
// reaches the wire; only the domain taxonomy does.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var domainErr *model.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Kind {
		case model.KindInvalidRequest:
			return model.NewValidationError(domainErr.Reason)
		case model.KindNotFound:
			return model.NewNotFoundError(domainErr.Entity)
		case model.KindPersistenceUnavailable:
			return model.NewServiceUnavailableError("")
		}
	}

	return model.NewInternalError("")
}

// MapDecodeError converts a request body decoding failure to a
// ProblemDetails response.
func MapDecodeError(err error) *model.ProblemDetails {
	return model.NewBadRequestError(err.Error())
}
