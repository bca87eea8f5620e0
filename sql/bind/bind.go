// Package bind 通过反射把行游标装配为记录对象
//
// 装配按记录类型的映射字段驱动：每个字段在游标上寻找同名读取方法
// （"Get"+字段名），调用后把返回值写入字段。游标类型不需要实现任何
// 接口，只要按命名约定暴露读取方法即可。
package bind

import (
	"reflect"
	"strings"

	"cdss/errors"
	"cdss/model"
	"cdss/sql/meta"
)

// Target 可装配的记录指针类型
type Target[T any] interface {
	*T
	model.IRecord
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// FromCursor 从游标装配一条 T 记录
//
// 每个映射字段解析规则：
//   - 候选方法为 "Get"+字段名及其缩写词小写变体（ID 同时尝试 GetID 与 GetId）
//   - 恰好命中一个方法才合法；零个报 MISSING_BINDING，多个报 AMBIGUOUS_BINDING
//   - 方法可以不带参数，也可以接收一个列名字符串
//   - 返回值可以是单值，也可以是 (值, error)
//   - 返回值必须可以直接赋给目标字段，否则报 TYPE_MISMATCH
//
// 装配先在默认构造处盖一次审计时间戳，随后绕过记录的校验型设置器
// 直接写字段，不再刷新时间戳。
func FromCursor[T any, PT Target[T]](cursor any) (PT, error) {
	record := PT(new(T))
	record.Touch()
	rv := reflect.ValueOf(record).Elem()
	cv := reflect.ValueOf(cursor)
	ct := cv.Type()

	for _, f := range meta.Fields(rv.Type()) {
		m, err := resolveAccessor(ct, f.Name)
		if err != nil {
			return nil, err
		}

		out, err := invokeAccessor(cv.Method(m.Index), f.Column)
		if err != nil {
			return nil, err
		}

		field := meta.Value(rv, f)
		if !field.IsValid() || !field.CanSet() {
			return nil, errors.NewErrorf(errors.ErrCodeMissingBinding,
				"字段 %s 不可写入", f.Name)
		}
		if !out.Type().AssignableTo(field.Type()) {
			return nil, errors.NewErrorf(errors.ErrCodeTypeMismatch,
				"字段 %s 期望 %s，方法 %s 返回 %s", f.Name, field.Type(), m.Name, out.Type())
		}
		field.Set(out)
	}
	return record, nil
}

// resolveAccessor 在游标类型上解析字段的读取方法
func resolveAccessor(ct reflect.Type, fieldName string) (reflect.Method, error) {
	var matches []reflect.Method
	for _, name := range accessorNames(fieldName) {
		if m, ok := ct.MethodByName(name); ok {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		return reflect.Method{}, errors.NewErrorf(errors.ErrCodeMissingBinding,
			"类型 %s 缺少字段 %s 的读取方法", ct, fieldName)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return reflect.Method{}, errors.NewErrorf(errors.ErrCodeAmbiguousBinding,
			"字段 %s 命中多个读取方法: %s", fieldName, strings.Join(names, ", "))
	}
}

// accessorNames 生成候选方法名
// 字段名本身之外，前导缩写词折叠为首字母大写也算一个候选
// （ID -> Id, URLPath -> UrlPath），两者同时存在即为歧义
func accessorNames(fieldName string) []string {
	names := []string{"Get" + fieldName}
	if folded := foldInitialism(fieldName); folded != fieldName {
		names = append(names, "Get"+folded)
	}
	return names
}

func foldInitialism(s string) string {
	runes := []rune(s)
	end := 0
	for end < len(runes) && runes[end] >= 'A' && runes[end] <= 'Z' {
		end++
	}
	if end < 2 {
		return s
	}
	// 后面紧跟小写字母说明缩写词只到倒数第二个大写为止
	if end < len(runes) {
		end--
	}
	for i := 1; i < end; i++ {
		runes[i] = runes[i] - 'A' + 'a'
	}
	return string(runes)
}

// invokeAccessor 调用读取方法并拆出返回值
func invokeAccessor(m reflect.Value, column string) (reflect.Value, error) {
	mt := m.Type()

	var args []reflect.Value
	switch mt.NumIn() {
	case 0:
	case 1:
		if mt.In(0).Kind() != reflect.String {
			return reflect.Value{}, errors.NewErrorf(errors.ErrCodeTypeMismatch,
				"读取方法参数必须是列名字符串，实际为 %s", mt.In(0))
		}
		args = []reflect.Value{reflect.ValueOf(column)}
	default:
		return reflect.Value{}, errors.NewErrorf(errors.ErrCodeTypeMismatch,
			"读取方法最多接收一个列名参数，实际 %d 个", mt.NumIn())
	}

	switch mt.NumOut() {
	case 1:
	case 2:
		if !mt.Out(1).Implements(errorType) {
			return reflect.Value{}, errors.NewErrorf(errors.ErrCodeTypeMismatch,
				"读取方法第二个返回值必须是 error，实际为 %s", mt.Out(1))
		}
	default:
		return reflect.Value{}, errors.NewErrorf(errors.ErrCodeTypeMismatch,
			"读取方法必须返回单值或 (值, error)，实际 %d 个返回值", mt.NumOut())
	}

	out := m.Call(args)
	if len(out) == 2 && !out[1].IsNil() {
		return reflect.Value{}, errors.WrapError(out[1].Interface().(error),
			errors.ErrCodeRowSource, "读取方法执行失败")
	}
	return out[0], nil
}
