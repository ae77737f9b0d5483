package Shallow2D

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/notargets/central2d/FV2D"
	"github.com/notargets/central2d/InputParameters"
)

type Solver = FV2D.Central2D[Shallow, FV2D.MinMod]

type Model struct {
	Sim        *Solver
	Init       InitType
	FrameTime  float64
	Frames     int
	OutputFile string
	History    []FV2D.Report // One report per written frame, initial state first
	// FrameHook, when set, wraps the solver call of every frame
	FrameHook func(frame int, run func() error) error
	start     time.Time
}

func NewModel(ip *InputParameters.InputParameters2D) (m *Model, err error) {
	var (
		it           InitType
		lim          FV2D.MinMod
		sim          *Solver
		start        = time.Now()
		NX, NY, W, H = ip.GridSize()
	)
	if err = ip.Validate(); err != nil {
		return
	}
	if it, err = NewInitType(ip.InitType); err != nil {
		FV2D.Logger().Warn("initial conditions", zap.Error(err))
		err = nil
	}
	if lim, err = FV2D.NewMinMod(ip.Theta); err != nil {
		return
	}
	if sim, err = FV2D.NewCentral2D(NewShallow(ip.Gravity), lim, W, H, NX, NY, ip.CFL); err != nil {
		return
	}
	sim.SetParallelDegree(ip.ProcLimit)
	m = &Model{
		Sim:        sim,
		Init:       it,
		FrameTime:  ip.FrameTime,
		Frames:     ip.Frames,
		OutputFile: ip.OutputFile,
		start:      start,
	}
	return
}

/*
Solve sets the initial state and runs Frames frames of FrameTime each. The
state is checked and written to OutputFile before the first frame and after
every frame. Progress goes to out:

	# <initial conditions>
	-
	  Volume: ...
	Time: <wall seconds for the frame>
	...
	#
	# Size: <nx>
	# Total Time: <wall seconds> seconds
	#
*/
func (m *Model) Solve(out io.Writer) (err error) {
	var (
		viz *FV2D.SimViz
		log = FV2D.Logger()
	)
	fmt.Fprintf(out, "# %s\n", m.Init)
	m.Sim.Init(NewInitFunc(m.Init, float64(m.Sim.NX)*m.Sim.DX, float64(m.Sim.NY)*m.Sim.DY))
	if viz, err = FV2D.CreateSimViz(m.OutputFile, m.Sim); err != nil {
		return
	}
	defer func() {
		if cerr := viz.Close(); err == nil {
			err = cerr
		}
	}()
	if err = m.checkAndWrite(out, viz); err != nil {
		return
	}
	for i := 0; i < m.Frames; i++ {
		t0 := time.Now()
		run := func() error { return m.Sim.Run(m.FrameTime) }
		if m.FrameHook != nil {
			err = m.FrameHook(i, run)
		} else {
			err = run()
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		elapsed := time.Since(t0)
		fmt.Fprintf(out, "Time: %e\n", elapsed.Seconds())
		log.Info("frame",
			zap.Int("frame", i),
			zap.Float64("t", m.Sim.Time()),
			zap.Int("steps", m.Sim.Steps()),
			zap.Duration("elapsed", elapsed))
		if err = m.checkAndWrite(out, viz); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	fmt.Fprintf(out, "\n#\n# Size: %d\n", m.Sim.NX)
	fmt.Fprintf(out, "# Total Time: %.16g seconds\n#\n", time.Since(m.start).Seconds())
	return
}

func (m *Model) checkAndWrite(out io.Writer, viz *FV2D.SimViz) (err error) {
	var (
		r FV2D.Report
	)
	if r, err = m.Sim.SolutionCheck(out); err != nil {
		return
	}
	m.History = append(m.History, r)
	return viz.WriteFrame()
}

// Volumes is the volume column of History.
func (m *Model) Volumes() (v []float64) {
	v = make([]float64, len(m.History))
	for i, r := range m.History {
		v[i] = r.Volume
	}
	return
}

// Centerline returns the water height along the middle row of the grid.
func (m *Model) Centerline() (h []float64) {
	var (
		j = m.Sim.NY / 2
	)
	h = make([]float64, m.Sim.NX)
	for i := range h {
		h[i] = m.Sim.At(i, j)[0]
	}
	return
}
