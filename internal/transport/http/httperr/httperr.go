package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// E 带状态码的错误，handler 用构造函数直接指定归类
type E struct {
	Status int
	Msg    string
	Err    error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *E) Unwrap() error { return e.Err }

func BadRequest(msg string) error { return &E{Status: http.StatusBadRequest, Msg: msg} }
func NotFound(msg string) error   { return &E{Status: http.StatusNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &E{Status: http.StatusInternalServerError, Msg: msg, Err: err}
}

// Classify 统一归类：全部 handler 失败都经此映射到状态码。
// 校验失败/唯一冲突/查询形状错误 → 400，记录缺失 → 404，其余 → 500。
func Classify(err error) (int, string) {
	var e *E
	if errors.As(err, &e) {
		return e.Status, e.Error()
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, verrs.Error()
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "record not found"
	}
	if IsDuplicateKey(err) {
		return http.StatusBadRequest, err.Error()
	}
	if isQueryShape(err) {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, err.Error()
}

// IsDuplicateKey 不只依赖 gorm.ErrDuplicatedKey：
// 部分驱动版本不翻译，兜底按消息嗅探
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

func isQueryShape(err error) bool {
	for _, target := range []error{
		gorm.ErrInvalidField,
		gorm.ErrInvalidData,
		gorm.ErrInvalidValue,
		gorm.ErrMissingWhereClause,
		gorm.ErrModelValueRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
