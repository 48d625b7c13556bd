package services

import (
	"context"
	"time"

	"bingo-rooms/models"
	"bingo-rooms/utils/logger"

	"github.com/go-redis/redis/v8"
)

const presenceTTL = 30 * time.Second

// Presence tracks which players currently hold an open socket. The
// database status column is the source of truth; redis, when configured,
// additionally keeps a TTL key per player so presence survives across
// server instances and expires on its own if a close is never seen.
type Presence struct {
	svc *RoomService
	rdb *redis.Client // nil when redis is not configured
}

func NewPresence(svc *RoomService, rdb *redis.Client) *Presence {
	return &Presence{svc: svc, rdb: rdb}
}

func (p *Presence) Connected(ctx context.Context, playerID string) {
	if err := p.svc.SetPlayerConnection(ctx, playerID, models.ConnectionConnected); err != nil {
		logger.Errorf("presence: connect player %s: %v", playerID, err)
	}
	p.touch(ctx, playerID)
}

func (p *Presence) Disconnected(ctx context.Context, playerID string) {
	if err := p.svc.SetPlayerConnection(ctx, playerID, models.ConnectionDisconnected); err != nil {
		logger.Errorf("presence: disconnect player %s: %v", playerID, err)
	}
	if p.rdb != nil {
		if err := p.rdb.Del(ctx, presenceKey(playerID)).Err(); err != nil {
			logger.Debugf("presence: del key for player %s: %v", playerID, err)
		}
	}
}

// Heartbeat refreshes the TTL key. Clients send one every few seconds
// while the tab is open.
func (p *Presence) Heartbeat(ctx context.Context, playerID string) {
	p.touch(ctx, playerID)
}

// Online reports whether a player currently holds a live presence key.
// Always false without redis; callers fall back to the stored status.
func (p *Presence) Online(ctx context.Context, playerID string) bool {
	if p.rdb == nil {
		return false
	}
	n, err := p.rdb.Exists(ctx, presenceKey(playerID)).Result()
	if err != nil {
		logger.Debugf("presence: exists for player %s: %v", playerID, err)
		return false
	}
	return n > 0
}

func (p *Presence) touch(ctx context.Context, playerID string) {
	if p.rdb == nil {
		return
	}
	if err := p.rdb.Set(ctx, presenceKey(playerID), "1", presenceTTL).Err(); err != nil {
		logger.Debugf("presence: touch player %s: %v", playerID, err)
	}
}

func presenceKey(playerID string) string {
	return "bingo:presence:" + playerID
}
