// Package compute 在内存记录集上做相似度匹配
package compute

import (
	"cdss/errors"
)

// Matcher 在候选集中为目标挑一条最相似的记录
type Matcher[T any] interface {
	Compute(data []T, target T) (T, error)
}

// MSEMatcher 以半平方误差为距离的匹配器
// 距离取比较器输出的 ½·d²，挑距离最小的候选；并列时保留先出现的一条
type MSEMatcher[T any] struct {
	compare func(a, b T) int
}

var _ Matcher[int] = (*MSEMatcher[int])(nil)

// NewMSEMatcher 用给定比较器构造匹配器
func NewMSEMatcher[T any](compare func(a, b T) int) *MSEMatcher[T] {
	return &MSEMatcher[T]{compare: compare}
}

// Compute 返回候选集中距目标最近的记录，空候选集报 NOT_FOUND
func (m *MSEMatcher[T]) Compute(data []T, target T) (T, error) {
	var zero T
	if len(data) == 0 {
		return zero, errors.New(errors.ErrCodeNotFound, "候选集为空")
	}

	best := data[0]
	bestErr := halfSquaredError(m.compare(data[0], target))
	for _, candidate := range data[1:] {
		if e := halfSquaredError(m.compare(candidate, target)); e < bestErr {
			best = candidate
			bestErr = e
		}
	}
	return best, nil
}

func halfSquaredError(d int) float64 {
	return float64(d) * float64(d) / 2
}
