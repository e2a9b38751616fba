package error

import "net/http"

type Error struct {
	httpCode  int
	errorCode int
	errorMsg  string
	errorDesc string
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}
}

func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return InternalServer(err.Error())
}

// ✅ 用戶端錯誤 (400 系列)
func ValidateErr(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "bad-request/body", errorDesc)
}

func ValidatePathParamsErr(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, "bad-request/params", errorDesc)
}

func BadRequestBody(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "bad-request-body", errorDesc)
}

func BadRequestParams(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, "bad-request-params", errorDesc)
}

func InvalidDateRange(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_DATE_RANGE, "invalid-date-range", errorDesc)
}

func InvalidTimeRange(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_TIME_RANGE, "invalid-time-range", errorDesc)
}

func InvalidPeriod(errorDesc string) *Error {
	return New(http.StatusBadRequest, INVALID_PERIOD, "invalid-period", errorDesc)
}

func WeakPassword(errorDesc string) *Error {
	return New(http.StatusBadRequest, WEAK_PASSWORD, "weak-password", errorDesc)
}

func PasswordMismatch(errorDesc string) *Error {
	return New(http.StatusBadRequest, PASSWORD_MISMATCH, "password-mismatch", errorDesc)
}

// ✅ 權限錯誤 (401, 403)
func Unauthorized(errorDesc string, errorCode ...int) *Error {
	errCode := UNAUTHORIZED
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusUnauthorized, errCode, "unauthorized", errorDesc)
}

func InvalidSession(errorDesc string) *Error {
	return New(http.StatusUnauthorized, INVALID_SESSION, "invalid-session", errorDesc)
}

func InvalidCredentials(errorDesc string) *Error {
	return New(http.StatusUnauthorized, INVALID_CREDENTIALS, "invalid-credentials", errorDesc)
}

func ProfileMismatch(errorDesc string) *Error {
	return New(http.StatusUnauthorized, PROFILE_MISMATCH, "profile-mismatch", errorDesc)
}

func Forbidden(errorDesc string, errorCode ...int) *Error {
	errCode := FORBIDDEN
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusForbidden, errCode, "forbidden", errorDesc)
}

func RateLimitExceeded(errorDesc string) *Error {
	return New(http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED, "rate-limit-exceeded", errorDesc)
}

// ✅ 資源找不到 (404)
func NotFound(errorDesc string, errorCode ...int) *Error {
	errCode := NOT_FOUND
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusNotFound, errCode, "not-found", errorDesc)
}

// ✅ 狀態衝突 (409 系列)
func AlreadyCheckedIn(errorDesc string) *Error {
	return New(http.StatusConflict, ALREADY_CHECKED_IN, "already-checked-in", errorDesc)
}

func AlreadyCheckedOut(errorDesc string) *Error {
	return New(http.StatusConflict, ALREADY_CHECKED_OUT, "already-checked-out", errorDesc)
}

func NotCheckedIn(errorDesc string) *Error {
	return New(http.StatusConflict, NOT_CHECKED_IN, "not-checked-in", errorDesc)
}

func AlreadyDecided(errorDesc string) *Error {
	return New(http.StatusConflict, ALREADY_DECIDED, "already-decided", errorDesc)
}

func DuplicatePeriod(errorDesc string) *Error {
	return New(http.StatusConflict, DUPLICATE_PERIOD, "duplicate-period", errorDesc)
}

func QuotaExceeded(errorDesc string) *Error {
	return New(http.StatusConflict, QUOTA_EXCEEDED, "quota-exceeded", errorDesc)
}

func DuplicateUsername(errorDesc string) *Error {
	return New(http.StatusConflict, DUPLICATE_USERNAME, "duplicate-username", errorDesc)
}

func DuplicateName(errorDesc string) *Error {
	return New(http.StatusConflict, DUPLICATE_NAME, "duplicate-name", errorDesc)
}

// ✅ 伺服器內部錯誤 (500 系列)
func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, "internal-server-error", errorDesc)
}

func StorageError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, STORAGE_ERROR, "storage-error", errorDesc)
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "service-unavailable", errorDesc)
}

func LockTimeout(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, LOCK_TIMEOUT, "lock-timeout", errorDesc)
}

func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}

func (e *Error) ErrorDesc() string {
	return e.errorDesc
}

func (e *Error) Error() string {
	return e.errorMsg
}

func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return BadRequestBody(desc)
	case http.StatusUnauthorized:
		return Unauthorized(desc)
	case http.StatusForbidden:
		return Forbidden(desc)
	case http.StatusNotFound:
		return NotFound(desc)
	case http.StatusInternalServerError:
		return InternalServer(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	default:
		return InternalServer(desc)
	}
}
