// pkg/messaging/nats.go
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"CustomerQuery/pkg/model"
)

// Publisher NATS JetStream查询审计事件发布器
type Publisher struct {
	conn      *nats.Conn
	jetStream jetstream.JetStream
	ctx       context.Context
	cancel    context.CancelFunc
}

// QueryEvent 查询审计事件
type QueryEvent struct {
	EventID     string            `json:"event_id"`
	Query       string            `json:"query"`
	ParsedQuery model.QueryParams `json:"parsed_query"`
	Count       int               `json:"count"`
	Time        time.Time         `json:"time"`
}

// NewPublisher 创建新的发布器
func NewPublisher(natsURL string) (*Publisher, error) {
	// 连接NATS
	nc, err := nats.Connect(natsURL,
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1), // 无限重连
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Printf("NATS连接断开: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Println("NATS重新连接成功")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("连接NATS失败: %w", err)
	}

	// 创建JetStream上下文
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("创建JetStream失败: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	publisher := &Publisher{
		conn:      nc,
		jetStream: js,
		ctx:       ctx,
		cancel:    cancel,
	}

	// 初始化查询审计Stream
	if err := publisher.setupStream(); err != nil {
		log.Printf("警告: 设置Stream失败: %v", err)
	}

	return publisher, nil
}

// setupStream 设置查询审计Stream
func (p *Publisher) setupStream() error {
	streamConfig := jetstream.StreamConfig{
		Name:        "QUERY_STREAM",
		Subjects:    []string{"queries.*"},
		Description: "查询审计事件数据流",
		Retention:   jetstream.LimitsPolicy,
		MaxMsgs:     50000,
		MaxBytes:    50 * 1024 * 1024,   // 50MB
		MaxAge:      7 * 24 * time.Hour, // 保留7天
	}

	_, err := p.jetStream.CreateOrUpdateStream(p.ctx, streamConfig)
	if err != nil {
		return fmt.Errorf("创建/更新Stream %s 失败: %w", streamConfig.Name, err)
	}

	log.Printf("Stream %s 设置成功", streamConfig.Name)
	return nil
}

// PublishQueryEvent 发布一条自然语言查询审计事件
func (p *Publisher) PublishQueryEvent(query string, params model.QueryParams, count int) error {
	event := QueryEvent{
		EventID:     uuid.New().String(),
		Query:       query,
		ParsedQuery: params,
		Count:       count,
		Time:        time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("序列化数据失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(p.ctx, 3*time.Second)
	defer cancel()

	if _, err := p.jetStream.Publish(ctx, "queries.nlp", payload); err != nil {
		return fmt.Errorf("发布消息到 queries.nlp 失败: %w", err)
	}

	return nil
}

// Close 关闭连接
func (p *Publisher) Close() error {
	log.Println("正在关闭NATS连接...")

	p.cancel()

	if p.conn != nil {
		p.conn.Close()
	}

	log.Println("NATS连接已关闭")
	return nil
}

// IsConnected 检查连接状态
func (p *Publisher) IsConnected() bool {
	return p.conn != nil && p.conn.IsConnected()
}
