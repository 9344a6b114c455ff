package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	sc "github.com/dmitrijs2005/challengepool/internal/server/config"
	"github.com/dmitrijs2005/challengepool/internal/server/models"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for testing the S3 wiring without a live endpoint.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// SettlementReceipt is the durable record written once per settlement:
// which challenge closed, how the pool split, and when.
type SettlementReceipt struct {
	ChallengeID int64          `json:"challenge_id"`
	Name        string         `json:"name"`
	Pool        int64          `json:"pool"`
	Winners     []ReceiptShare `json:"winners"`
	SettledAt   time.Time      `json:"settled_at"`
}

// ReceiptShare is one winner's slice of the pool.
type ReceiptShare struct {
	Username string `json:"username"`
	Amount   int64  `json:"amount"`
}

// NewSettlementReceipt builds a receipt from a settled challenge. Winner
// shares mirror the settlement math: integer split, remainder to the first
// winner.
func NewSettlementReceipt(ch *models.Challenge, winnerUsernames []string) *SettlementReceipt {
	n := int64(len(winnerUsernames))
	share := ch.Pool / n
	remainder := ch.Pool % n

	shares := make([]ReceiptShare, 0, n)
	for i, username := range winnerUsernames {
		amount := share
		if i == 0 {
			amount += remainder
		}
		shares = append(shares, ReceiptShare{Username: username, Amount: amount})
	}

	settledAt := time.Now()
	if ch.SettledAt != nil {
		settledAt = *ch.SettledAt
	}

	return &SettlementReceipt{
		ChallengeID: ch.ID,
		Name:        ch.Name,
		Pool:        ch.Pool,
		Winners:     shares,
		SettledAt:   settledAt,
	}
}

// ReceiptService archives settlement receipts to an S3-compatible bucket.
type ReceiptService struct {
	config *sc.Config
}

func NewReceiptService(cfg *sc.Config) *ReceiptService {
	return &ReceiptService{config: cfg}
}

// Enabled reports whether an object-storage endpoint is configured.
func (s *ReceiptService) Enabled() bool {
	return s.config.S3BaseEndpoint != ""
}

func (s *ReceiptService) getClient() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func receiptStorageKey(challengeID int64) string {
	d := time.Now()
	return fmt.Sprintf("receipts/%d/%d/%d-%v.json", d.Year(), d.Month(), challengeID, uuid.New())
}

// Archive serializes the receipt to JSON and uploads it.
func (s *ReceiptService) Archive(ctx context.Context, receipt *SettlementReceipt) error {
	client, err := s.getClient()
	if err != nil {
		return err
	}

	body, err := json.Marshal(receipt)
	if err != nil {
		return err
	}

	bucket := s.config.S3Bucket
	key := receiptStorageKey(receipt.ChallengeID)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("error uploading receipt: %w", err)
	}
	return nil
}
