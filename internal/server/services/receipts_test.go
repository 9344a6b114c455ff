package services

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/challengepool/internal/server/config"
	"github.com/dmitrijs2005/challengepool/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettlementReceipt(t *testing.T) {
	settledAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ch := &models.Challenge{
		ID:        7,
		Name:      "marathon",
		Pool:      200,
		SettledAt: &settledAt,
	}

	receipt := NewSettlementReceipt(ch, []string{"alice", "bob", "carol"})

	assert.Equal(t, int64(7), receipt.ChallengeID)
	assert.Equal(t, "marathon", receipt.Name)
	assert.Equal(t, int64(200), receipt.Pool)
	assert.Equal(t, settledAt, receipt.SettledAt)

	require.Len(t, receipt.Winners, 3)
	assert.Equal(t, ReceiptShare{Username: "alice", Amount: 68}, receipt.Winners[0])
	assert.Equal(t, ReceiptShare{Username: "bob", Amount: 66}, receipt.Winners[1])
	assert.Equal(t, ReceiptShare{Username: "carol", Amount: 66}, receipt.Winners[2])
}

func TestNewSettlementReceipt_SingleWinner(t *testing.T) {
	ch := &models.Challenge{ID: 1, Name: "sprint", Pool: 50}

	receipt := NewSettlementReceipt(ch, []string{"alice"})

	require.Len(t, receipt.Winners, 1)
	assert.Equal(t, int64(50), receipt.Winners[0].Amount)
	assert.False(t, receipt.SettledAt.IsZero())
}

func TestEnabled(t *testing.T) {
	assert.False(t, NewReceiptService(&sc.Config{}).Enabled())
	assert.True(t, NewReceiptService(&sc.Config{S3BaseEndpoint: "http://localhost:9000"}).Enabled())
}

func TestArchive(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origPut := putObject
	defer func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		putObject = origPut
	}()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}

	var gotInput *s3.PutObjectInput
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		gotInput = in
		return &s3.PutObjectOutput{}, nil
	}

	svc := NewReceiptService(&sc.Config{
		S3BaseEndpoint: "http://localhost:9000",
		S3Bucket:       "receipts-bucket",
		S3Region:       "us-east-1",
	})

	receipt := &SettlementReceipt{
		ChallengeID: 7,
		Name:        "marathon",
		Pool:        200,
		Winners:     []ReceiptShare{{Username: "alice", Amount: 200}},
		SettledAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, svc.Archive(context.Background(), receipt))

	require.NotNil(t, gotInput)
	assert.Equal(t, "receipts-bucket", *gotInput.Bucket)
	assert.True(t, strings.HasPrefix(*gotInput.Key, "receipts/"), "key %q", *gotInput.Key)
	assert.True(t, strings.HasSuffix(*gotInput.Key, ".json"), "key %q", *gotInput.Key)
	assert.Equal(t, "application/json", *gotInput.ContentType)

	body, err := io.ReadAll(gotInput.Body)
	require.NoError(t, err)

	var uploaded SettlementReceipt
	require.NoError(t, json.Unmarshal(body, &uploaded))
	assert.Equal(t, receipt.ChallengeID, uploaded.ChallengeID)
	assert.Equal(t, receipt.Winners, uploaded.Winners)
}
