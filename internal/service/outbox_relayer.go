package service

import (
	"context"
	"log"
	"strconv"
	"time"

	"Ming_Social/internal/model"
	"Ming_Social/internal/pkg"
	"Ming_Social/internal/repository"
)

type Sender func(ctx context.Context, ob *model.SocialOutbox) error

// OutboxRelayer 把 social_outbox 里的关注事件异步投递出去
type OutboxRelayer struct {
	repo      repository.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(repo repository.OutboxRepository, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      repo,
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 按 follower 作 key，同一用户的事件落同一分区
func KafkaSender(p *pkg.Producer) Sender {
	return func(ctx context.Context, ob *model.SocialOutbox) error {
		return p.Send(ctx, strconv.FormatUint(ob.Follower, 10), []byte(ob.Payload))
	}
}

// LogSender 未配置 kafka 时的退路
func LogSender(ctx context.Context, ob *model.SocialOutbox) error {
	log.Printf("OUTBOX SEND type=%s follower=%d followed=%d payload=%s", ob.EventType, ob.Follower, ob.Followed, ob.Payload)
	return nil
}
