// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadOptions verifies only non-empty settings become load options.
func TestLoadOptions(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		expected int
	}{
		{"empty", Settings{}, 0},
		{"profile", Settings{Profile: "dev"}, 1},
		{"region", Settings{Region: "eu-west-1"}, 1},
		{"both", Settings{Profile: "dev", Region: "eu-west-1"}, 2},
		{"endpoint only", Settings{Endpoint: "http://localhost:9000"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, loadOptions(tt.settings), tt.expected)
		})
	}
}

func TestLoadOptions_Applied(t *testing.T) {
	var lo config.LoadOptions
	for _, opt := range loadOptions(Settings{Profile: "dev", Region: "us-east-2"}) {
		require.NoError(t, opt(&lo))
	}

	assert.Equal(t, "dev", lo.SharedConfigProfile)
	assert.Equal(t, "us-east-2", lo.Region)
}

func TestClientOptions(t *testing.T) {
	assert.Empty(t, clientOptions(Settings{}))

	opts := clientOptions(Settings{Endpoint: "http://localhost:9000"})
	require.Len(t, opts, 1)

	var o s3v2.Options
	opts[0](&o)
	require.NotNil(t, o.BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *o.BaseEndpoint)
	assert.True(t, o.UsePathStyle)
}
