// Package errs 定义 HTTP 层按错误码映射状态码的错误类型
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInternal        = "INTERNAL"
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeAlreadyExists   = "ALREADY_EXISTS"
)

var httpStatus = map[string]int{
	CodeInternal:        http.StatusInternalServerError,
	CodeNotFound:        http.StatusNotFound,
	CodeInvalidArgument: http.StatusBadRequest,
	CodeAlreadyExists:   http.StatusConflict,
}

// AppError 携带错误码；message 为空时直接使用底层错误的信息
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	switch {
	case e.message == "" && e.err != nil:
		return e.err.Error()
	case e.err != nil:
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	default:
		return e.message
	}
}

func (e *AppError) Code() string  { return e.code }
func (e *AppError) Unwrap() error { return e.err }

func New(code, message string, err error) *AppError {
	return &AppError{code: code, message: message, err: err}
}

func InvalidArgument(message string) *AppError {
	return New(CodeInvalidArgument, message, nil)
}

func NotFound(format string, args ...any) *AppError {
	return New(CodeNotFound, fmt.Sprintf(format, args...), nil)
}

// AlreadyExists 用于唯一约束冲突，保留底层错误
func AlreadyExists(message string, err error) *AppError {
	return New(CodeAlreadyExists, message, err)
}

// Internal 保留数据库原始信息，客户端能看到具体原因
func Internal(err error) *AppError {
	if err == nil {
		return nil
	}
	return New(CodeInternal, "", err)
}

// CodeOf 取错误链上第一个 AppError 的码，找不到按 INTERNAL
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code()
	}
	return CodeInternal
}

func HTTPStatus(err error) int {
	if status, ok := httpStatus[CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
