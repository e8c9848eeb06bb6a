package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	models "github.com/glkeru/loyalty/reconcile/internal/models"
)

// MarshalArtifact - the JSON document payout review reads: the ranked rows
func MarshalArtifact(ledger models.Ledger) ([]byte, error) {
	rows := ledger.Rows
	if rows == nil {
		rows = []models.LedgerRow{}
	}
	return json.MarshalIndent(rows, "", "  ")
}

// ArtifactKey - object key of a run, grouped by the first day of the range
func ArtifactKey(ledger models.Ledger) string {
	day := ledger.From
	if day == "" {
		day = ledger.GeneratedAt.Format(models.DateLayout)
	}
	return "ledgers/" + day + "/" + ledger.RunID + ".json"
}

// BucketArtifact uploads ledgers to an S3 compatible bucket (R2, MinIO)
type BucketArtifact struct {
	client *s3.Client
	bucket string
}

func NewBucketArtifact(ctx context.Context) (*BucketArtifact, error) {
	bucket := os.Getenv("LEDGER_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("env LEDGER_BUCKET is not set")
	}
	endpoint := os.Getenv("LEDGER_BUCKET_ENDPOINT")
	if endpoint == "" {
		return nil, fmt.Errorf("env LEDGER_BUCKET_ENDPOINT is not set")
	}
	keyID := os.Getenv("LEDGER_ACCESS_KEY_ID")
	keySecret := os.Getenv("LEDGER_ACCESS_KEY_SECRET")

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(keyID, keySecret, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load bucket config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
	return &BucketArtifact{client, bucket}, nil
}

func (b *BucketArtifact) Name() string {
	return "bucket"
}

func (b *BucketArtifact) PublishLedger(ctx context.Context, ledger models.Ledger) error {
	body, err := MarshalArtifact(ledger)
	if err != nil {
		return err
	}
	_, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(ArtifactKey(ledger)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload ledger: %w", err)
	}
	return nil
}

// FileArtifact writes the ledger next to the scraper output
type FileArtifact struct {
	path string
}

func NewFileArtifact() (*FileArtifact, error) {
	path := os.Getenv("LEDGER_OUTPUT_FILE")
	if path == "" {
		return nil, fmt.Errorf("env LEDGER_OUTPUT_FILE is not set")
	}
	return &FileArtifact{path}, nil
}

func (f *FileArtifact) Name() string {
	return "file"
}

func (f *FileArtifact) PublishLedger(_ context.Context, ledger models.Ledger) error {
	body, err := MarshalArtifact(ledger)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
