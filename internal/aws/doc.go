// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws builds the AWS SDK v2 config and S3 client used to publish
// directives to a bucket.
package aws
