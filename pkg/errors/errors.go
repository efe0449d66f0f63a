package errors

import (
	"fmt"
	"net/http"
	"strings"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenNotYetValid     = fmt.Errorf("токен ещё не активен")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")

	// Контекст
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID не найден в контексте запроса")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
)

// Kind классифицирует ошибку уровня предметной области.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindInvalidState      Kind = "invalid_state"
	KindInvalidTransition Kind = "invalid_transition"
	KindNotFound          Kind = "not_found"
	KindConflict          Kind = "conflict"
)

// HttpError - единый тип ошибки, который контроллеры отдают наружу.
// Message - текст для пользователя, Err - техническая причина для логов,
// Details - дополнительный payload (например, список нарушений валидации).
type HttpError struct {
	Code    int
	Kind    Kind
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// NewValidationError собирает ВСЕ нарушения сразу, а не падает на первом -
// фронт должен показать пользователю полный список проблем.
func NewValidationError(issues ...string) *HttpError {
	return &HttpError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: strings.Join(issues, "; "),
		Details: issues,
	}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: message,
		Err:     ErrNotFound,
	}
}

func NewConflictError(message string) *HttpError {
	return &HttpError{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// NewInvalidStateError - операция не разрешена в текущем статусе заявки.
func NewInvalidStateError(message string) *HttpError {
	return &HttpError{
		Code:    http.StatusConflict,
		Kind:    KindInvalidState,
		Message: message,
	}
}

// NewInvalidTransitionError - запрошенный переход отсутствует в таблице переходов.
func NewInvalidTransitionError(from, to string) *HttpError {
	return &HttpError{
		Code:    http.StatusConflict,
		Kind:    KindInvalidTransition,
		Message: fmt.Sprintf("переход статуса из '%s' в '%s' не разрешён", from, to),
	}
}

// KindOf возвращает Kind ошибки, если это HttpError предметной области.
func KindOf(err error) Kind {
	if httpErr, ok := err.(*HttpError); ok {
		return httpErr.Kind
	}
	return ""
}
