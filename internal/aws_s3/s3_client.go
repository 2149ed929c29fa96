//go:generate mockgen -destination=../mocks/bucket_client_mock.go -package=mocks . BucketClient

package aws_s3

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/IliaW/partner-evaluator/config"
	"github.com/IliaW/partner-evaluator/internal/model"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	crd "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	jsoniter "github.com/json-iterator/go"
)

type BucketClient interface {
	WriteReport(ctx context.Context, report *model.Report, document string) string
}

type S3BucketClient struct {
	client *s3.Client
	cfg    *config.S3Config
	log    *slog.Logger
}

// archivedReport is the S3 object layout: the report plus the document that was evaluated.
type archivedReport struct {
	*model.Report
	Document string `json:"document"`
}

func NewS3BucketClient(cfg *config.S3Config, log *slog.Logger) *S3BucketClient {
	log.Info("connecting to s3...")
	ctx := context.Background()

	s3Config, err := awsCfg.LoadDefaultConfig(ctx,
		awsCfg.WithCredentialsProvider(crd.NewStaticCredentialsProvider(cfg.AwsAccessKey, cfg.AwsSecretKey, "")),
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithBaseEndpoint(cfg.AwsBaseEndpoint))
	if err != nil {
		log.Error("failed to load s3 config.", slog.String("err", err.Error()))
		os.Exit(1)
	}

	// LocalStack does not support `virtual host addressing style` that uses s3 by default.
	// For test purposes use configuration with disabled 'virtual hosted bucket addressing'.
	var s3client *s3.Client
	if cfg.AwsAccessKey == "test" {
		log.Warn("test configuration for s3")
		s3client = s3.NewFromConfig(s3Config, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	} else {
		s3client = s3.NewFromConfig(s3Config)
	}
	log.Info("connected to s3")

	return &S3BucketClient{
		client: s3client,
		cfg:    cfg,
		log:    log,
	}
}

// WriteReport stores the report together with the evaluated document and returns the object link,
// or an empty string if the write failed.
func (bc *S3BucketClient) WriteReport(ctx context.Context, report *model.Report, document string) string {
	hash := sha256.New()
	hash.Write([]byte(report.URL))
	hashUrl := hex.EncodeToString(hash.Sum(nil))

	s3Key := fmt.Sprintf("%s/%s/%s.json", bc.cfg.KeyPrefix, hashUrl, report.ID)
	body, err := jsoniter.Marshal(archivedReport{Report: report, Document: document})
	if err != nil {
		bc.log.Error("marshaling failed.", slog.String("err", err.Error()))
		return ""
	}

	contentType := "application/json"
	_, err = bc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bc.cfg.BucketName,
		Key:         &s3Key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		bc.log.Error("failed to save report to s3.", slog.String("err", err.Error()))
		return ""
	}
	bc.log.Debug("report saved to s3.")

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bc.cfg.BucketName, bc.cfg.Region, s3Key)
}
