//go:build !linux

package cmd

import (
	"io"

	"go.uber.org/zap"
)

func perfFrameHook(out io.Writer, logger *zap.Logger) func(frame int, run func() error) error {
	logger.Warn("hardware counters are only available on linux")
	return func(frame int, run func() error) error {
		return run()
	}
}
