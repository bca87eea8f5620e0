// Package collections 提供集合与多重集相关的通用算法
package collections

import "sort"

// Compare 以重叠度对两个多重集排序：
//
//	result = len(a) + Σ_{x∈a} Frequency(b, x)
//
// 注意：这不是一个合法的全序比较器——它不反对称，且两个相同的非空
// 多重集的比较结果严格为正。它只用于按"a 在 b 中的重叠量"这一单调
// 递增的度量做排名，消费方依赖其数值刻度，不得改写为带符号差值。
// 空的 a 恒返回 0。
func Compare[T comparable](a, b []T) int {
	acc := len(a)
	for _, x := range a {
		acc += Frequency(b, x)
	}
	return acc
}

// Frequency 返回元素 x 在 s 中出现的次数
func Frequency[T comparable](s []T, x T) int {
	n := 0
	for _, e := range s {
		if e == x {
			n++
		}
	}
	return n
}

// Occurrences 返回每个元素与其出现次数的映射
func Occurrences[T comparable](s []T) map[T]int {
	counts := make(map[T]int, len(s))
	for _, e := range s {
		counts[e]++
	}
	return counts
}

// MinOccurring 返回出现次数最少的元素，空输入返回零值与 false
// 并列时结果取决于遍历顺序，调用方不得依赖并列裁决
func MinOccurring[T comparable](s []T) (T, bool) {
	var winner T
	if len(s) == 0 {
		return winner, false
	}

	best := -1
	for e, n := range Occurrences(s) {
		if best < 0 || n < best {
			winner, best = e, n
		}
	}
	return winner, true
}

// MaxOccurring 返回出现次数最多的元素，空输入返回零值与 false
func MaxOccurring[T comparable](s []T) (T, bool) {
	var winner T
	if len(s) == 0 {
		return winner, false
	}

	best := -1
	for e, n := range Occurrences(s) {
		if n > best {
			winner, best = e, n
		}
	}
	return winner, true
}

// Union 返回若干切片的去重并集，元素顺序不保证
func Union[T comparable](ss ...[]T) []T {
	seen := make(map[T]struct{})
	var out []T
	for _, s := range ss {
		for _, e := range s {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// Intersection 返回 a 与 b 的去重交集
func Intersection[T comparable](a, b []T) []T {
	inB := make(map[T]struct{}, len(b))
	for _, e := range b {
		inB[e] = struct{}{}
	}

	seen := make(map[T]struct{})
	var out []T
	for _, e := range a {
		if _, ok := inB[e]; !ok {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// SortedKeys 返回 int 键映射的升序键切片
func SortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
