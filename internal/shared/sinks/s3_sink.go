package sinks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Options tunes the remote backend's per-object write behavior.
//
// SDK-level retries are disabled on the client so the application-level
// policy here is the only one in play; stacking the two makes per-object
// latency unpredictable under fan-out.
type S3Options struct {
	PutTimeout time.Duration // per put attempt
	PutRetries int           // attempts per object
}

type s3Sink struct {
	client *s3.Client
	bucket string
	prefix string
	opts   S3Options
}

// NewS3Sink opens a bucket+prefix scope using the default AWS credential
// chain. It fails fast with a HeadBucket probe so an unreachable or
// unauthorized bucket aborts the run before any fan-out starts.
func NewS3Sink(ctx context.Context, bucket, prefix string, opts S3Options) (Sink, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.RetryMaxAttempts = 0
	})

	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err != nil {
		return nil, fmt.Errorf("bucket %q unreachable: %w", bucket, err)
	}

	return &s3Sink{client: client, bucket: bucket, prefix: prefix, opts: opts}, nil
}

func (s *s3Sink) Write(ctx context.Context, name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}
	key := s.key(name)

	return retry.Do(
		func() error {
			attemptCtx, cancel := context.WithTimeout(ctx, s.opts.PutTimeout)
			defer cancel()

			_, err := s.client.PutObject(attemptCtx, &s3.PutObjectInput{
				Bucket:        aws.String(s.bucket),
				Key:           aws.String(key),
				Body:          bytes.NewReader(data),
				ContentLength: aws.Int64(int64(len(data))),
			})
			return err
		},
		retry.Context(ctx),
		retry.Attempts(uint(s.opts.PutRetries)),
		retry.OnRetry(func(_ uint, _ error) {
			metricPutRetriesTotal.WithLabelValues().Inc()
		}),
		retry.Delay(200*time.Millisecond),
		retry.MaxDelay(2*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}

func (s *s3Sink) List(ctx context.Context) ([]string, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix + "/")
	}

	paginator := s3.NewListObjectsV2Paginator(s.client, input)

	var names []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list s3://%s/%s: %w", s.bucket, s.prefix, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if strings.HasSuffix(key, "/") {
				continue
			}
			name := key
			if s.prefix != "" {
				name = strings.TrimPrefix(key, s.prefix+"/")
			}
			// Objects under deeper prefixes belong to other scopes.
			if strings.Contains(name, "/") {
				continue
			}
			names = append(names, name)
		}
	}
	return names, nil
}

func (s *s3Sink) Read(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (s *s3Sink) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}
