package gateway

import (
	"context"

	"github.com/digiration/digiration/internal/pkg/models"
	"github.com/digiration/digiration/internal/pkg/nsq"
)

// topicPurchaseCompleted carries committed purchases to downstream
// consumers (reporting, notifications).
const topicPurchaseCompleted = "ration.purchase.completed"

// PurchasePublisher publishes purchase events over NSQ
type PurchasePublisher struct {
	producer *nsq.Producer
}

// NewPurchasePublisher creates a new purchase event publisher
func NewPurchasePublisher(producer *nsq.Producer) *PurchasePublisher {
	return &PurchasePublisher{producer: producer}
}

// PublishPurchaseCompleted emits the purchase-completed event
func (p *PurchasePublisher) PublishPurchaseCompleted(ctx context.Context, event *models.PurchaseEvent) error {
	return p.producer.Publish(topicPurchaseCompleted, event)
}
