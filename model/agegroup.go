package model

import "time"

// AgeGroup 年龄组枚举，每个枚举值对应一段闭区间出生日期
type AgeGroup int

const (
	// AgeGroupUnderage 1998-01-01（含）之后出生
	AgeGroupUnderage AgeGroup = iota

	// AgeGroupAdult 1952-01-01 至 1997-12-31（含）出生
	AgeGroupAdult

	// AgeGroupElderly 1952-01-01 之前出生
	AgeGroupElderly
)

// AllAgeGroups 按枚举序排列的全部年龄组
var AllAgeGroups = []AgeGroup{AgeGroupUnderage, AgeGroupAdult, AgeGroupElderly}

var (
	dateMin = time.Date(-9999, time.January, 1, 0, 0, 0, 0, time.UTC)
	dateMax = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

	underageStart = time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC)
	adultStart    = time.Date(1952, time.January, 1, 0, 0, 0, 0, time.UTC)
	adultEnd      = time.Date(1997, time.December, 31, 0, 0, 0, 0, time.UTC)
	elderlyEnd    = time.Date(1951, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// bounds 返回该年龄组的闭区间端点
func (g AgeGroup) bounds() (start, end time.Time) {
	switch g {
	case AgeGroupUnderage:
		return underageStart, dateMax
	case AgeGroupAdult:
		return adultStart, adultEnd
	case AgeGroupElderly:
		return dateMin, elderlyEnd
	default:
		return dateMax, dateMin
	}
}

// Includes 判断出生日期是否落在该年龄组的闭区间内
func (g AgeGroup) Includes(date time.Time) bool {
	start, end := g.bounds()
	return !(date.Before(start) || date.After(end))
}

// String 返回枚举名称
func (g AgeGroup) String() string {
	switch g {
	case AgeGroupUnderage:
		return "UNDERAGE"
	case AgeGroupAdult:
		return "ADULT"
	case AgeGroupElderly:
		return "ELDERLY"
	default:
		return "UNKNOWN"
	}
}

// Compare 按枚举序号比较
func (g AgeGroup) Compare(other AgeGroup) int {
	return int(g) - int(other)
}

// AgeGroupFor 返回包含给定出生日期的年龄组
// 区间在实现上是穷尽的，第二个返回值仅供调用方自行断言
func AgeGroupFor(date time.Time) (AgeGroup, bool) {
	for _, g := range AllAgeGroups {
		if g.Includes(date) {
			return g, true
		}
	}
	return AgeGroupAdult, false
}

// ParseAgeGroup 解析枚举名称
func ParseAgeGroup(text string) (AgeGroup, bool) {
	switch text {
	case "UNDERAGE":
		return AgeGroupUnderage, true
	case "ADULT":
		return AgeGroupAdult, true
	case "ELDERLY":
		return AgeGroupElderly, true
	default:
		return AgeGroupAdult, false
	}
}
