package reconcile

import (
	"context"
	"errors"

	models "github.com/glkeru/loyalty/reconcile/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// only one snapshot is kept, every run replaces it
const latestLedger = "latest"

func (m *MongoDB) SaveLedger(ctx context.Context, ledger models.Ledger) error {
	filter := bson.M{"_id": latestLedger}
	_, err := m.ledger.ReplaceOne(ctx, filter, ledger, options.Replace().SetUpsert(true))
	return err
}

func (m *MongoDB) GetLedger(ctx context.Context) (models.Ledger, error) {
	var ledger models.Ledger
	err := m.ledger.FindOne(ctx, bson.M{"_id": latestLedger}).Decode(&ledger)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ledger, models.ErrNotFound
	}
	return ledger, err
}
