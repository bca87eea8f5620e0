// Package synth 从记录对象合成 SQL 语句片段
//
// 片段的字段顺序与 meta 的枚举顺序一致，同一记录类型的多次合成
// 逐字节稳定。片段不做引号转义，适用面是本仓库内部的语句拼装。
package synth

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"cdss/sql/meta"
)

// AssignmentList 合成赋值列表片段，形如 "id=7, name=流感"
// 既有方言里 INSERT 语句的 VALUES 子句用的是这种形式
func AssignmentList(record any) string {
	rv := reflect.ValueOf(record)
	var sb strings.Builder
	for i, f := range meta.Fields(rv.Type()) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Column)
		sb.WriteString("=")
		sb.WriteString(valueString(meta.Value(rv, f)))
	}
	return sb.String()
}

// SetList 合成取值列表片段，形如 "7, 流感"
// 既有方言里 UPDATE 语句的 SET 子句用的是这种形式
func SetList(record any) string {
	rv := reflect.ValueOf(record)
	var sb strings.Builder
	for i, f := range meta.Fields(rv.Type()) {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(valueString(meta.Value(rv, f)))
	}
	return sb.String()
}

// valueString 做值到文本的自然转换
// 日期只保留年月日，集合等自带 String 的类型用其自身表示
func valueString(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	if t, ok := v.Interface().(time.Time); ok {
		return t.Format("2006-01-02")
	}
	return fmt.Sprint(v.Interface())
}
