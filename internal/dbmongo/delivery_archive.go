package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DeliveriesCollection = "webhook_deliveries"

// WebhookDelivery is one raw webhook body as Meta sent it.
type WebhookDelivery struct {
	RequestID  string    `bson:"request_id" json:"request_id"`
	ReceivedAt time.Time `bson:"received_at" json:"received_at"`
	Payload    string    `bson:"payload" json:"payload"`
	Size       int       `bson:"size" json:"size"`
}

type DeliveryArchive struct {
	coll *mongo.Collection
}

func NewDeliveryArchive(mc *MongoClient) *DeliveryArchive {
	return &DeliveryArchive{coll: mc.Database.Collection(DeliveriesCollection)}
}

// EnsureIndexes creates the request id and received_at indexes. Safe to call on every start.
func (a *DeliveryArchive) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "request_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "received_at", Value: -1}},
		},
	}
	if _, err := a.coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create delivery indexes: %w", err)
	}
	return nil
}

func (a *DeliveryArchive) Archive(ctx context.Context, requestID string, payload []byte, receivedAt time.Time) error {
	doc := WebhookDelivery{
		RequestID:  requestID,
		ReceivedAt: receivedAt.UTC(),
		Payload:    string(payload),
		Size:       len(payload),
	}
	if _, err := a.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to archive delivery %s: %w", requestID, err)
	}
	return nil
}

// Find returns one archived delivery, mostly for replaying it by hand.
func (a *DeliveryArchive) Find(ctx context.Context, requestID string) (*WebhookDelivery, error) {
	var delivery WebhookDelivery
	err := a.coll.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&delivery)
	if err != nil {
		return nil, fmt.Errorf("failed to find delivery %s: %w", requestID, err)
	}
	return &delivery, nil
}
