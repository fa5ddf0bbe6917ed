// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"context"
	"fmt"
	"path"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/dirgen/internal/log"
)

// PutObjectAPI is the slice of the S3 client the sink uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// S3Sink uploads each directive as an object named like the local file,
// beneath Prefix.
type S3Sink struct {
	Client PutObjectAPI
	Bucket string
	Prefix string
}

// Key returns the object key for rec.
func (s *S3Sink) Key(rec Record) string {
	prefix := strings.Trim(s.Prefix, "/")
	if prefix == "" {
		return rec.Name()
	}
	return path.Join(prefix, rec.Name())
}

// Save implements Sink.
func (s *S3Sink) Save(ctx context.Context, rec Record) (string, error) {
	key := s.Key(rec)
	_, err := s.Client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(s.Bucket),
		Key:         awsv2.String(key),
		Body:        strings.NewReader(string(rec.Directive)),
		ContentType: awsv2.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload directive to s3://%s/%s: %w", s.Bucket, key, err)
	}
	log.Debugf("directive uploaded: bucket=%s key=%s", s.Bucket, key)
	return fmt.Sprintf("s3://%s/%s", s.Bucket, key), nil
}
