// Package meta 提供记录类型的字段-数据列枚举
//
// 绑定器与语句合成器共用这一份枚举，保证二者看到的字段集合与
// 声明顺序完全一致。
package meta

import (
	"reflect"
	"sync"
)

// Field 描述一个映射到数据列的记录字段
type Field struct {
	// Name Go 字段名
	Name string

	// Column 数据列名，取自 db 标签，缺省为字段名的蛇形写法
	Column string

	// Index reflect 字段索引路径（内嵌结构展开后）
	Index []int
}

var (
	mu    sync.RWMutex
	cache = make(map[reflect.Type][]Field)
)

// Fields 按声明顺序枚举 t 的映射字段
// 规则：
//   - 跳过未导出字段
//   - 内嵌结构（time.Time 除外）递归展开，其字段视为外层声明的一部分
//   - db:"-" 的字段不参与映射（例如审计时间戳）
//
// t 可以是结构体类型或其指针类型；结果按类型缓存
func Fields(t reflect.Type) []Field {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	mu.RLock()
	if fields, ok := cache[t]; ok {
		mu.RUnlock()
		return fields
	}
	mu.RUnlock()

	fields := buildFields(t)
	mu.Lock()
	cache[t] = fields
	mu.Unlock()
	return fields
}

func buildFields(t reflect.Type) []Field {
	var fields []Field

	var walk func(reflect.Type, []int)
	walk = func(cur reflect.Type, prefix []int) {
		for i := 0; i < cur.NumField(); i++ {
			f := cur.Field(i)
			// 跳过未导出字段
			if f.PkgPath != "" {
				continue
			}

			index := append(append([]int(nil), prefix...), i)

			if f.Anonymous && f.Type.Kind() == reflect.Struct && !isTimeType(f.Type) {
				// 内嵌结构体（例如 model.Record），递归展开
				walk(f.Type, index)
				continue
			}

			tag := f.Tag.Get("db")
			if tag == "-" {
				continue
			}
			column := tag
			if column == "" {
				column = toSnakeCase(f.Name)
			}

			fields = append(fields, Field{
				Name:   f.Name,
				Column: column,
				Index:  index,
			})
		}
	}

	walk(t, nil)
	return fields
}

// Value 返回 v 上字段 f 对应的 reflect.Value
// 索引路径中遇到 nil 指针时返回无效值
func Value(v reflect.Value, f Field) reflect.Value {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	for _, i := range f.Index {
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct || i < 0 || i >= v.NumField() {
			return reflect.Value{}
		}
		v = v.Field(i)
	}
	return v
}

func isTimeType(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() == "time" && t.Name() == "Time"
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(s[i-1])
			// 连续大写视为同一个缩写词，不重复插入下划线
			if !(prev >= 'A' && prev <= 'Z') {
				result = append(result, '_')
			}
		}
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		result = append(result, r)
	}
	return string(result)
}
