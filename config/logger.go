// SPDX-License-Identifier: MIT

package config

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Logger builds the root logger named "wdiam" writing to w.
func (c *Config) Logger(w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "wdiam",
		Level:      hclog.LevelFromString(c.Log.Level),
		JSONFormat: c.Log.JSON,
		Output:     w,
	})
}
