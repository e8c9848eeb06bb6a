package reconcile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	models "github.com/glkeru/loyalty/reconcile/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB - bonus rules and the ledger snapshot
type MongoDB struct {
	mgo    *mongo.Client
	rules  *mongo.Collection
	ledger *mongo.Collection
}

func NewMongoDB() (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("RECONCILE_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env RECONCILE_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database("reconcileDB")

	return &MongoDB{client, db.Collection("rules"), db.Collection("ledger")}, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.mgo.Disconnect(ctx)
}

// GetActiveRules returns the newest active rule set
func (m *MongoDB) GetActiveRules(ctx context.Context) (models.BonusRules, error) {
	var rules models.BonusRules
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	err := m.rules.FindOne(ctx, bson.M{"active": true}, opts).Decode(&rules)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rules, models.ErrNotFound
	}
	if err != nil {
		return rules, err
	}
	return rules, nil
}

func (m *MongoDB) GetAllRules(ctx context.Context) ([]models.BonusRules, error) {
	var all []models.BonusRules
	result, err := m.rules.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer result.Close(ctx)
	for result.Next(ctx) {
		var rules models.BonusRules
		err := result.Decode(&rules)
		if err != nil {
			return nil, err
		}
		all = append(all, rules)
	}
	return all, result.Err()
}

// SaveRules inserts a new rule set or replaces an existing one.
// An active rule set deactivates the others.
func (m *MongoDB) SaveRules(ctx context.Context, rules models.BonusRules) error {
	if rules.Active {
		_, err := m.rules.UpdateMany(ctx, bson.M{"active": true}, bson.M{"$set": bson.M{"active": false}})
		if err != nil {
			return err
		}
	}
	// empty ID - new rule set
	if rules.ID == uuid.Nil {
		rules.ID = uuid.New()
		_, err := m.rules.InsertOne(ctx, rules)
		return err
	}
	_, err := m.rules.ReplaceOne(ctx, bson.M{"id": rules.ID}, rules, options.Replace().SetUpsert(true))
	return err
}
