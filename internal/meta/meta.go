// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"github.com/tfctl/dirgen/internal/config"
)

// Meta contains runtime metadata shared by the command layer: the loaded
// configuration and the working directory at startup.
type Meta struct {
	Config      config.Type
	StartingDir string
}
