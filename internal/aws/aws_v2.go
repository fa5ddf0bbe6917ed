// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/dirgen/internal/log"
)

// Settings are the optional overrides for reaching S3. Empty fields inherit
// the shell's AWS setup (AWS_PROFILE, shared config, env, IMDS).
type Settings struct {
	Profile string
	Region  string
	// Endpoint points at an S3 compatible store (minio, localstack). Path
	// style addressing is used when it is set.
	Endpoint string
}

// NewS3 loads the SDK config for s and returns an S3 client.
func NewS3(ctx context.Context, s Settings) (*s3v2.Client, error) {
	opts := loadOptions(s)
	log.Debugf("aws load opts: profile=%s region=%s len=%d", s.Profile, s.Region, len(opts))

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return nil, err
	}

	client := s3v2.NewFromConfig(cfg, clientOptions(s)...)
	log.Debugf("s3 client created: endpoint=%s", s.Endpoint)
	return client, nil
}

func loadOptions(s Settings) []func(*config.LoadOptions) error {
	var opts []func(*config.LoadOptions) error
	if s.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(s.Profile))
	}
	if s.Region != "" {
		opts = append(opts, config.WithRegion(s.Region))
	}
	return opts
}

func clientOptions(s Settings) []func(*s3v2.Options) {
	if s.Endpoint == "" {
		return nil
	}
	return []func(*s3v2.Options){
		func(o *s3v2.Options) {
			o.BaseEndpoint = awsv2.String(s.Endpoint)
			o.UsePathStyle = true
		},
	}
}
