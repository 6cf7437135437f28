package errors

import (
	stderrors "errors"
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is сравнивает ошибки по коду, чтобы копии с деталями совпадали с исходным sentinel
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails возвращает копию ошибки с деталями, sentinel не изменяется
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage возвращает копию ошибки с уточнённым сообщением
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

// DataSourceError - ошибка чтения/разбора данных форматов или подразделений.
// Пробрасывается вызывающему без изменений.
type DataSourceError struct {
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source: %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// NewDataSourceError оборачивает ошибку источника данных; nil остаётся nil
func NewDataSourceError(op string, err error) error {
	if err == nil {
		return nil
	}
	var dsErr *DataSourceError
	if stderrors.As(err, &dsErr) {
		return err
	}
	return &DataSourceError{Op: op, Err: err}
}

// IsDataSourceError проверяет, является ли ошибка ошибкой источника данных
func IsDataSourceError(err error) bool {
	var dsErr *DataSourceError
	return stderrors.As(err, &dsErr)
}

// ToAppError приводит произвольную ошибку к AppError для ответа клиенту
func ToAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	if IsDataSourceError(err) {
		return ErrDataSource
	}
	return ErrInternalServer
}
