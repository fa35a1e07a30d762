package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shenikar/waste_sorting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const MessageBinUpdated = "bin_updated"

// BinUpdateMessage - сообщение клиентам карты об изменении контейнера
type BinUpdateMessage struct {
	Type      string      `json:"type"`
	Bin       *models.Bin `json:"bin"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub хранит подключенных клиентов карты и рассылает им обновления контейнеров
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	logger     *logrus.Logger

	mu sync.RWMutex
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run обрабатывает подключения и рассылку до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	log := h.logger.WithField("component", "realtime_hub")
	log.Info("Realtime hub started")
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Info("Realtime hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			log.WithField("clients", total).Debug("Client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			log.WithField("clients", total).Debug("Client disconnected")

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Буфер клиента переполнен, отключаем его
					delete(h.clients, client)
					close(client.send)
					log.Warn("Client buffer full, disconnecting")
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyBinUpdated рассылает новое состояние контейнера всем клиентам
func (h *Hub) NotifyBinUpdated(bin *models.Bin) {
	data, err := json.Marshal(BinUpdateMessage{
		Type:      MessageBinUpdated,
		Bin:       bin,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to marshal bin update")
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.WithField("bin_id", bin.ID).Warn("Broadcast queue full, bin update dropped")
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
