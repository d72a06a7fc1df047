package apierrors

import (
	"errors"
	"fmt"

	"ontrack/internal/core/domain"
	"ontrack/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code and message.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	if e.ErrDetails.Detail == "" {
		return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
	}
	return fmt.Sprintf("Code: %d, Message: %s (%s)", e.ErrDetails.Code, e.ErrDetails.Message, e.ErrDetails.Detail)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	message := GetTransErrorMsg(msgKey, lang)
	return JsonErr{ErrDetails: Err{Code: code, Message: message}}
}

// FromDomainError classifies err by its domain sentinel and translates it.
// The raw error text is kept as detail.
func FromDomainError(err error, lang string) JsonErr {
	var jsonErr JsonErr
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		jsonErr = CreateError(CodeInvalidArgument, MsgInvalidArgument, lang)
	case errors.Is(err, domain.ErrReferentialIntegrity):
		jsonErr = CreateError(CodeNotFound, MsgReferentialIntegrity, lang)
	default:
		jsonErr = CreateError(CodeInternal, MsgUnexpectedError, lang)
	}
	if err != nil {
		jsonErr.ErrDetails.Detail = err.Error()
	}
	return jsonErr
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(lang, msgKey, nil)
}
