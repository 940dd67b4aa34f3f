package service

import (
	"context"
	"log"
	"time"

	"Event_Admin/internal/model"
	"Event_Admin/internal/pkg"
	"Event_Admin/internal/repository/mysql"
)

type Sender func(ctx context.Context, ob *model.ModerationOutbox) error

type outboxStore interface {
	List(ctx context.Context, limit int) ([]model.ModerationOutbox, error)
	SuccessUpdate(ctx context.Context, id uint64) error
	RetryUpdate(ctx context.Context, id uint64) error
}

// OutboxRelayer 审计事件投递器：定时扫 moderation_outbox，逐条交给 sender
type OutboxRelayer struct {
	repo      outboxStore
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{},
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
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// KafkaSender 把审计事件投到 kafka，key 用审计流水号保证同事件有序
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.ModerationOutbox) error {
		return p.Send(ctx, ob.EventID, []byte(ob.Payload))
	}
}

// LogSender 未配置 kafka 时的兜底 sender
func LogSender(ctx context.Context, ob *model.ModerationOutbox) error {
	log.Printf("OUTBOX SEND action=%s actor=%s target=%s payload=%s", ob.Action, ob.ActorID, ob.TargetID, ob.Payload)
	return nil
}
