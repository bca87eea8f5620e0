package errors

import (
	"fmt"
	"runtime"
)

// New 创建新错误（带调用位置）
func New(code ErrorCode, msg string) error {
	_, file, line, _ := runtime.Caller(1)
	enhancedMsg := fmt.Sprintf("%s (位置: %s:%d)", msg, file, line)
	return NewError(code, enhancedMsg)
}

// Wrap 包装错误，添加错误码和上下文信息
// 建议：在组件边界使用，添加操作上下文
func Wrap(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return WrapError(err, code, msg)
}

// WrapRowSource 包装行源错误
// 自动保留 NotFound 语义，其余一律归为 ROW_SOURCE_ERROR
func WrapRowSource(err error, operation string) error {
	if err == nil {
		return nil
	}

	if IsNotFound(err) {
		return WrapError(err, ErrCodeNotFound, operation)
	}
	return WrapError(err, ErrCodeRowSource, fmt.Sprintf("行源操作失败: %s", operation))
}

// NewInvalidArgument 创建参数非法错误
func NewInvalidArgument(msg string) error {
	return New(ErrCodeInvalidArgument, msg)
}
