// Package notify 对外广播记录变更事件
package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"cdss/errors"
)

// Op 变更类型
type Op string

const (
	OpInsert Op = "insert"
	OpDelete Op = "delete"
	OpUpdate Op = "update"
)

// Event 一次记录变更
type Event struct {
	ID       string    `json:"id"`
	Op       Op        `json:"op"`
	Table    string    `json:"table"`
	RecordID int       `json:"record_id"`
	At       time.Time `json:"at"`
}

// NewEvent 构造带事件标识与时间戳的变更事件
func NewEvent(op Op, table string, recordID int) Event {
	return Event{
		ID:       uuid.New().String(),
		Op:       op,
		Table:    table,
		RecordID: recordID,
		At:       time.Now(),
	}
}

// Notifier 变更事件的发布方
type Notifier interface {
	Publish(ctx context.Context, event Event) error
}

// subjectPrefix 事件主题前缀，表名作为最后一段
const subjectPrefix = "cdss.records."

// NatsNotifier 把事件以 JSON 发布到 NATS 主题
type NatsNotifier struct {
	conn *nats.Conn
}

var _ Notifier = (*NatsNotifier)(nil)

// NewNats 用已建立的连接构造发布方
func NewNats(conn *nats.Conn) *NatsNotifier {
	return &NatsNotifier{conn: conn}
}

// Publish 发布事件，主题为 "cdss.records.<表名>"
func (n *NatsNotifier) Publish(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "事件序列化失败")
	}
	if err := n.conn.Publish(subjectPrefix+event.Table, data); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "事件发布失败")
	}
	return nil
}

// Memory 把事件记录在内存里，供测试与示例观察
type Memory struct {
	mu     sync.Mutex
	events []Event
}

var _ Notifier = (*Memory)(nil)

// NewMemory 构造内存记录器
func NewMemory() *Memory {
	return &Memory{}
}

// Publish 追加事件
func (m *Memory) Publish(_ context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

// Events 返回已记录事件的快照
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}
