// Package sse 向已连接的列表页推送实体变更
package sse

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Event 一条 Server-Sent Event
type Event struct {
	EventType string `json:"event"`
	Data      string `json:"data"`
}

// Change 实体变更事件内容
type Change struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
	Action string `json:"action"`
}

// Change actions
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EventEntityChange 变更事件类型
const EventEntityChange = "entity_change"

// Client 已连接的客户端
type Client struct {
	ID     string
	Events chan Event
}

// Hub 管理全部 SSE 连接
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	logger  *zap.Logger
}

// NewHub 创建 Hub
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[string]*Client),
		logger:  logger,
	}
}

// Register 注册客户端
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	h.logger.Debug("SSE client registered", zap.String("client_id", client.ID), zap.Int("total", len(h.clients)))
}

// Unregister 移除客户端并关闭其事件通道
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
		h.logger.Debug("SSE client unregistered", zap.String("client_id", clientID), zap.Int("total", len(h.clients)))
	}
}

// Clients 当前连接数
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast 向所有客户端发送事件，缓冲区满的客户端跳过
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Events <- event:
		default:
			h.logger.Warn("SSE client buffer full, skipping event", zap.String("client_id", client.ID))
		}
	}
}

// PublishChange 广播实体变更，列表页据此刷新
func (h *Hub) PublishChange(entity, id, action string) {
	data, _ := json.Marshal(Change{Entity: entity, ID: id, Action: action})
	h.Broadcast(Event{EventType: EventEntityChange, Data: string(data)})
}
