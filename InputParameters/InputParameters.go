package InputParameters

import (
	"fmt"
	"math"
	"strings"

	"github.com/ghodss/yaml"
	"go.uber.org/multierr"
)

// Parameters obtained from the YAML input file. ghodss/yaml routes through
// encoding/json, so the keys are the json tags.
type InputParameters2D struct {
	Title      string  `json:"Title"`
	InitType   string  `json:"InitType"`  // dam_break, pond, river or wave
	NX         int     `json:"NX"`        // Cells per side in x
	NY         int     `json:"NY"`        // Cells in y, zero means square cells
	Width      float64 `json:"Width"`     // Domain width
	Height     float64 `json:"Height"`    // Domain height, zero means Width*NY/NX
	CFL        float64 `json:"CFL"`       // Zero selects the solver default
	Theta      float64 `json:"Theta"`     // MinMod theta, zero selects 2
	Gravity    float64 `json:"Gravity"`   // Zero selects 9.8
	FrameTime  float64 `json:"FrameTime"` // Simulated time between frames
	Frames     int     `json:"Frames"`
	OutputFile string  `json:"OutputFile"`
	ProcLimit  int     `json:"ProcLimit"` // Zero uses every CPU
}

func NewInputParameters2D() (ip *InputParameters2D) {
	ip = &InputParameters2D{
		Title:      "Circular dam break",
		InitType:   "dam_break",
		NX:         200,
		Width:      2.0,
		CFL:        0.45,
		Theta:      2.0,
		Gravity:    9.8,
		FrameTime:  0.01,
		Frames:     50,
		OutputFile: "waves.out",
	}
	return
}

// Parse overlays the YAML document in data onto ip, keys that are absent
// keep their current values.
func (ip *InputParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// GridSize returns the grid and domain dimensions with the square cell
// defaults applied.
func (ip *InputParameters2D) GridSize() (NX, NY int, W, H float64) {
	NX, NY, W, H = ip.NX, ip.NY, ip.Width, ip.Height
	if NY == 0 {
		NY = NX
	}
	if H == 0 && NX > 0 {
		H = W * float64(NY) / float64(NX)
	}
	return
}

// Validate reports every invalid parameter at once.
func (ip *InputParameters2D) Validate() (err error) {
	var (
		NX, NY, W, H = ip.GridSize()
	)
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf(format, args...))
		}
	}
	finite := func(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
	check(NX > 0, "NX must be positive, have %d", NX)
	check(NY > 0, "NY must be positive, have %d", NY)
	check(W > 0 && finite(W), "Width must be positive, have %g", W)
	check(H > 0 && finite(H), "Height must be positive, have %g", H)
	check(ip.CFL >= 0 && finite(ip.CFL), "CFL must not be negative, have %g", ip.CFL)
	check(ip.Theta >= 0 && ip.Theta <= 2, "Theta must be in [0,2], have %g", ip.Theta)
	check(ip.Gravity >= 0 && finite(ip.Gravity), "Gravity must not be negative, have %g", ip.Gravity)
	check(ip.FrameTime >= 0 && finite(ip.FrameTime), "FrameTime must not be negative, have %g", ip.FrameTime)
	check(ip.Frames >= 0, "Frames must not be negative, have %d", ip.Frames)
	check(ip.ProcLimit >= 0, "ProcLimit must not be negative, have %d", ip.ProcLimit)
	check(len(strings.TrimSpace(ip.OutputFile)) != 0, "OutputFile must be named")
	return
}

func (ip *InputParameters2D) Print() {
	NX, NY, W, H := ip.GridSize()
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	fmt.Printf("[%d x %d]\t\t= Grid Cells\n", NX, NY)
	fmt.Printf("[%g x %g]\t\t= Domain Size\n", W, H)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= Theta\n", ip.Theta)
	fmt.Printf("%8.5f\t\t= Gravity\n", ip.Gravity)
	fmt.Printf("%8.5f\t\t= FrameTime\n", ip.FrameTime)
	fmt.Printf("[%d]\t\t\t= Frames\n", ip.Frames)
	fmt.Printf("[%s]\t\t= OutputFile\n", ip.OutputFile)
	fmt.Printf("[%d]\t\t\t= ProcLimit\n", ip.ProcLimit)
}
