package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifica erros de negócio para o mapeamento HTTP.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindInternal
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Handle escreve o status HTTP correspondente ao Kind do erro.
// Erros desconhecidos viram 500 genérico.
func Handle(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Write(c, http.StatusInternalServerError, "internal_error", "Erreur serveur")
		return
	}

	switch be.Kind {
	case KindValidation:
		Write(c, http.StatusBadRequest, be.Code, be.Message)
	case KindNotFound:
		Write(c, http.StatusNotFound, be.Code, be.Message)
	case KindForbidden:
		Write(c, http.StatusForbidden, be.Code, be.Message)
	case KindConflict:
		Write(c, http.StatusConflict, be.Code, be.Message)
	default:
		Write(c, http.StatusInternalServerError, be.Code, "Erreur serveur")
	}
}
