// Package model 定义临床领域的值记录类型
//
// 设计原则：
// 1. 记录是普通可变对象，相等性只看 id，不引入内存注册表或身份映射
// 2. 审计时间戳通过显式的 Touch 操作维护，由记录自身的修改方法调用
// 3. 无任何并发保护，共享实例需由调用方同步（或保持单 goroutine 使用）
package model

import (
	"time"

	"cdss/errors"
)

// IRecord 所有记录类型的根接口
type IRecord interface {
	// GetID 返回记录在其表内唯一的标识
	GetID() int

	// GetName 返回展示名称
	GetName() string

	// GetLastUpdated 返回最近一次变更的审计时间戳
	GetLastUpdated() time.Time

	// Touch 将审计时间戳刷新为当前时间
	// 记录自身的每个修改方法（包括 id 重新赋值）都必须调用它；
	// 绑定器绕过修改方法直接写字段，因此绑定不会触发
	Touch()
}

// Record 通用记录基础字段（用于内嵌）
// LastUpdated 只做审计追踪，不是并发控制令牌，也不映射到数据列
type Record struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	LastUpdated time.Time `db:"-"`
}

// newRecord 构造基础记录并打上构造时间戳
func newRecord(id int, name string) Record {
	r := Record{ID: id, Name: name}
	r.Touch()
	return r
}

// GetID 实现 IRecord 接口
func (r *Record) GetID() int {
	return r.ID
}

// GetName 实现 IRecord 接口
func (r *Record) GetName() string {
	return r.Name
}

// GetLastUpdated 实现 IRecord 接口
func (r *Record) GetLastUpdated() time.Time {
	return r.LastUpdated
}

// Touch 实现 IRecord 接口
func (r *Record) Touch() {
	r.LastUpdated = time.Now()
}

// SetID 重新赋值标识，同样会刷新审计时间戳
func (r *Record) SetID(id int) {
	r.Touch()
	r.ID = id
}

// SetName 设置展示名称，空名称视为缺失参数
func (r *Record) SetName(name string) error {
	if name == "" {
		return errors.NewInvalidArgument("记录名称不能为空")
	}
	r.Touch()
	r.Name = name
	return nil
}
