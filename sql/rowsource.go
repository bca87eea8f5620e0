package sql

import "context"

// IRowSource 行源协作方接口
// 调用同步阻塞直至底层往返完成；取消与超时只经由 ctx 透传给底层驱动。
// 单个行源句柄不做内部加锁，并发调用需由调用方自行同步。
type IRowSource interface {
	// Query 执行查询语句，返回行游标序列
	Query(ctx context.Context, statement string) (IRows, error)

	// Exec 执行变更语句
	Exec(ctx context.Context, statement string) error
}

// IRows 前向行游标序列
// 有限、不可重放；使用方必须在所有退出路径上调用 Close 释放资源
type IRows interface {
	// Next 取出下一行，序列耗尽返回 false
	Next() (*Row, bool)

	// Close 释放游标及其底层语句资源
	Close() error

	// Err 返回遍历过程中记录的首个错误
	Err() error
}
