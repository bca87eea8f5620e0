package sql

import (
	"fmt"
	"time"

	"cdss/model"
)

// Row 单行游标，按列名读取并转换为领域类型
// 底层值来自驱动的原始扫描结果，读取方法自行做类型折算
type Row struct {
	values map[string]any
}

// NewRow 用列名到原始值的映射构造行
func NewRow(values map[string]any) *Row {
	cp := make(map[string]any, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return &Row{values: cp}
}

// Columns 返回行中出现的列数
func (r *Row) Columns() int {
	return len(r.values)
}

// Has 判断指定列是否存在
func (r *Row) Has(column string) bool {
	_, ok := r.values[column]
	return ok
}

// GetID 读取整型主键列
func (r *Row) GetID(column string) int {
	return r.getInt(column)
}

// GetName 读取名称列
func (r *Row) GetName(column string) string {
	return r.getString(column)
}

// GetBirthDate 读取出生日期列
// 接受驱动原生的 time.Time，或 "2006-01-02" / RFC3339 文本
func (r *Row) GetBirthDate(column string) time.Time {
	v, ok := r.values[column]
	if !ok || v == nil {
		return time.Time{}
	}
	switch x := v.(type) {
	case time.Time:
		return x
	case string:
		return parseDate(x)
	case []byte:
		return parseDate(string(x))
	}
	return time.Time{}
}

// GetGender 读取性别列
func (r *Row) GetGender(column string) model.Gender {
	g, _ := model.ParseGender(r.getString(column))
	return g
}

// GetAgeGroup 读取年龄段列
func (r *Row) GetAgeGroup(column string) model.AgeGroup {
	g, _ := model.ParseAgeGroup(r.getString(column))
	return g
}

// GetSymptoms 读取症状集合列，格式为 "id:name;id:name"
func (r *Row) GetSymptoms(column string) model.SymptomSet {
	return model.ParseSymptomSet(r.getString(column))
}

// GetAilments 读取疾病集合列，格式为 "id:name;id:name"
func (r *Row) GetAilments(column string) model.AilmentSet {
	return model.ParseAilmentSet(r.getString(column))
}

func (r *Row) getInt(column string) int {
	v, ok := r.values[column]
	if !ok || v == nil {
		return 0
	}
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case int32:
		return int(x)
	case float64:
		return int(x)
	case []byte:
		return atoiLoose(string(x))
	case string:
		return atoiLoose(x)
	}
	return 0
}

func (r *Row) getString(column string) string {
	v, ok := r.values[column]
	if !ok || v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	}
	return fmt.Sprint(v)
}

func atoiLoose(s string) int {
	n := 0
	neg := false
	for i, c := range s {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		return -n
	}
	return n
}

func parseDate(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}
