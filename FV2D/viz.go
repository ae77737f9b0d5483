package FV2D

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
)

// FrameSource is the read side of a solver needed to write frames.
type FrameSource interface {
	XSize() int
	YSize() int
	At(i, j int) []float64
}

/*
SimViz writes a binary stream for external viewers: a header of two little
endian int32 values nx, ny followed by one frame per WriteFrame call holding
the first component of every interior cell as float32, j outer and i inner.
*/
type SimViz struct {
	closer io.Closer
	buf    *bufio.Writer
	sim    FrameSource
	frame  []float32
}

func NewSimViz(w io.Writer, sim FrameSource) (sv *SimViz, err error) {
	sv = &SimViz{
		buf:   bufio.NewWriter(w),
		sim:   sim,
		frame: make([]float32, sim.XSize()*sim.YSize()),
	}
	header := [2]int32{int32(sim.XSize()), int32(sim.YSize())}
	if err = binary.Write(sv.buf, binary.LittleEndian, header); err != nil {
		return nil, err
	}
	return
}

// CreateSimViz creates (or truncates) fileName and writes the header to it.
func CreateSimViz(fileName string, sim FrameSource) (sv *SimViz, err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(fileName); err != nil {
		return
	}
	if sv, err = NewSimViz(file, sim); err != nil {
		file.Close()
		return
	}
	sv.closer = file
	return
}

func (sv *SimViz) WriteFrame() (err error) {
	var (
		nx, ny = sv.sim.XSize(), sv.sim.YSize()
	)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			sv.frame[i+j*nx] = float32(sv.sim.At(i, j)[0])
		}
	}
	if err = binary.Write(sv.buf, binary.LittleEndian, sv.frame); err != nil {
		return
	}
	return sv.buf.Flush()
}

// Close flushes buffered output and closes the file opened by CreateSimViz.
func (sv *SimViz) Close() (err error) {
	err = sv.buf.Flush()
	if sv.closer != nil {
		if cerr := sv.closer.Close(); err == nil {
			err = cerr
		}
	}
	return
}
