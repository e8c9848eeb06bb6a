package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	models "github.com/glkeru/loyalty/reconcile/internal/models"
	redis "github.com/redis/go-redis/v9"
)

const ledgerKey = "reconcile:ledger:latest"

type CacheService struct {
	client *redis.Client
}

func NewCacheService() (serv *CacheService, err error) {
	// config
	addr := os.Getenv("RECONCILE_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env RECONCILE_CACHE_URL is not set")
	}
	user := os.Getenv("RECONCILE_CACHE_USER")
	pwd := os.Getenv("RECONCILE_CACHE_PWD")

	// redis
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db}, nil
}

func (c *CacheService) GetLedger(ctx context.Context) (models.Ledger, error) {
	var ledger models.Ledger
	val, err := c.client.Get(ctx, ledgerKey).Bytes()
	if err == redis.Nil {
		return ledger, models.ErrNotFound
	} else if err != nil {
		return ledger, err
	}
	err = json.Unmarshal(val, &ledger)
	return ledger, err
}

func (c *CacheService) SetLedger(ctx context.Context, ledger models.Ledger) error {
	val, err := json.Marshal(ledger)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ledgerKey, val, 5*time.Minute).Err()
}

func (c *CacheService) InvalidateLedger(ctx context.Context) error {
	return c.client.Del(ctx, ledgerKey).Err()
}
