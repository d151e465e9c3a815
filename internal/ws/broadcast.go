package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/zhaoyu-io/folio/internal/content"
	"go.uber.org/zap"
)

// ErrTooManyConnections is returned by AddClient when the connection limit
// is reached.
var ErrTooManyConnections = errors.New("too many websocket connections")

const writeWait = 10 * time.Second

type client struct {
	id   string
	conn *websocket.Conn
	b    *Broadcaster
	enc  Encoding
	send chan []byte
}

func (c *client) writePump() {
	defer c.conn.Close()
	frame := websocket.TextMessage
	if c.enc == EncodingCBOR {
		frame = websocket.BinaryMessage
	}
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(frame, msg); err != nil {
			c.b.RemoveClient(c)
			return
		}
	}
}

// Broadcaster fans content changes out to websocket clients. Reloads are
// coalesced: several QueueUpdate calls inside the throttle window produce
// one update carrying the latest content.
type Broadcaster struct {
	mu             sync.RWMutex
	clients        map[*client]bool
	store          *content.Store
	throttle       time.Duration
	maxConns       int
	log            *zap.Logger
	snapshotTicker *time.Ticker
	stopCh         chan struct{}
	stopOnce       sync.Once
	wg             sync.WaitGroup

	flushMu    sync.Mutex
	flushTimer *time.Timer
}

// NewBroadcaster starts the periodic snapshot loop. A zero snapshotInterval
// disables it and a zero maxConns means no limit.
func NewBroadcaster(store *content.Store, throttle, snapshotInterval time.Duration, maxConns int, log *zap.Logger) *Broadcaster {
	if log == nil {
		log = zap.NewNop()
	}
	b := &Broadcaster{
		clients:  make(map[*client]bool),
		store:    store,
		throttle: throttle,
		maxConns: maxConns,
		log:      log,
		stopCh:   make(chan struct{}),
	}
	if snapshotInterval > 0 {
		b.snapshotTicker = time.NewTicker(snapshotInterval)
		b.wg.Add(1)
		go b.snapshotLoop()
	}
	return b
}

// AddClient registers conn and queues the current snapshot for it.
func (b *Broadcaster) AddClient(conn *websocket.Conn, enc Encoding) (*client, error) {
	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		b:    b,
		enc:  enc,
		send: make(chan []byte, 16),
	}

	b.mu.Lock()
	if b.maxConns > 0 && len(b.clients) >= b.maxConns {
		b.mu.Unlock()
		return nil, ErrTooManyConnections
	}
	b.clients[c] = true
	b.mu.Unlock()

	cur, version := b.store.Get()
	data, err := enc.Marshal(WSMessage{
		Type:    MsgSnapshot,
		Payload: SnapshotPayload{ClientID: c.id, Version: version, Content: cur},
	})
	if err == nil {
		c.send <- data
	} else {
		b.log.Error("encode snapshot", zap.Error(err))
	}

	go c.writePump()
	return c, nil
}

// RemoveClient is safe to call more than once for the same client.
func (b *Broadcaster) RemoveClient(c *client) {
	b.mu.Lock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		close(c.send)
	}
	b.mu.Unlock()
}

// QueueUpdate schedules an update broadcast after the throttle window.
func (b *Broadcaster) QueueUpdate() {
	b.flushMu.Lock()
	defer b.flushMu.Unlock()
	if b.flushTimer == nil {
		b.flushTimer = time.AfterFunc(b.throttle, b.flush)
	}
}

func (b *Broadcaster) flush() {
	b.flushMu.Lock()
	b.flushTimer = nil
	b.flushMu.Unlock()

	cur, version := b.store.Get()
	b.broadcast(WSMessage{
		Type:    MsgUpdate,
		Payload: SnapshotPayload{Version: version, Content: cur},
	})
}

func (b *Broadcaster) snapshotLoop() {
	defer b.wg.Done()
	for {
		select {
		case <-b.stopCh:
			return
		case <-b.snapshotTicker.C:
			cur, version := b.store.Get()
			b.broadcast(WSMessage{
				Type:    MsgSnapshot,
				Payload: SnapshotPayload{Version: version, Content: cur},
			})
		}
	}
}

func (b *Broadcaster) broadcast(msg WSMessage) {
	b.mu.RLock()
	clients := make([]*client, 0, len(b.clients))
	for c := range b.clients {
		clients = append(clients, c)
	}
	b.mu.RUnlock()

	// Encode each format at most once.
	encoded := make(map[Encoding][]byte, 2)
	for _, c := range clients {
		data, ok := encoded[c.enc]
		if !ok {
			var err error
			data, err = c.enc.Marshal(msg)
			if err != nil {
				b.log.Error("broadcast encode", zap.Error(err))
				return
			}
			encoded[c.enc] = data
		}
		slow := false
		b.mu.RLock()
		if b.clients[c] {
			select {
			case c.send <- data:
			default:
				slow = true
			}
		}
		b.mu.RUnlock()
		if slow {
			b.log.Warn("ws client too slow, disconnecting", zap.String("client", c.id))
			b.RemoveClient(c)
		}
	}
}

func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Stop ends the snapshot loop, cancels a pending update and disconnects
// every client.
func (b *Broadcaster) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
		if b.snapshotTicker != nil {
			b.snapshotTicker.Stop()
		}
		b.wg.Wait()

		b.flushMu.Lock()
		if b.flushTimer != nil {
			b.flushTimer.Stop()
			b.flushTimer = nil
		}
		b.flushMu.Unlock()

		b.mu.Lock()
		for c := range b.clients {
			delete(b.clients, c)
			close(c.send)
		}
		b.mu.Unlock()
	})
}
