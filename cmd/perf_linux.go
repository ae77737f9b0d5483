//go:build linux

package cmd

import (
	"fmt"
	"io"

	perf "github.com/hodgesds/perf-utils"
	"go.uber.org/zap"
)

// perfFrameHook counts the CPU instructions retired by every frame. When the
// counters can not be opened the frame runs uncounted.
func perfFrameHook(out io.Writer, logger *zap.Logger) func(frame int, run func() error) error {
	return func(frame int, run func() error) (err error) {
		var (
			pv  *perf.ProfileValue
			ran bool
		)
		pv, err = perf.CPUInstructions(func() error {
			ran = true
			return run()
		})
		switch {
		case err != nil && !ran:
			logger.Warn("hardware counters unavailable", zap.Int("frame", frame), zap.Error(err))
			return run()
		case err != nil:
			return
		}
		fmt.Fprintf(out, "Instructions: %d\n", pv.Value)
		return
	}
}
