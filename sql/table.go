// Package sql 提供行源抽象与数据表元信息
//
// 本包只负责"执行语句、返回行游标"这一层：不做连接池、不做事务、
// 不做预编译参数绑定，这些都明确排除在映射引擎的职责之外。
package sql

import "cdss/model"

// Table 描述一个数据表与其映射的记录类型
// 表名在访问器构造时固定，之后不再变化
type Table struct {
	// Name 表在数据源中的名字
	Name string

	// Model 映射的记录类型原型（指针形式）
	Model any
}

// 领域内固定的三张表
var (
	SymptomTable = Table{Name: "Symptom", Model: (*model.Symptom)(nil)}
	AilmentTable = Table{Name: "Ailment", Model: (*model.Ailment)(nil)}
	PatientTable = Table{Name: "Patient", Model: (*model.Patient)(nil)}
)

// String 返回表名
func (t Table) String() string {
	return t.Name
}
