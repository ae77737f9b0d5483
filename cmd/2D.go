/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/central2d/FV2D"
	"github.com/notargets/central2d/InputParameters"
	"github.com/notargets/central2d/model_problems/Shallow2D"
	"github.com/notargets/central2d/utils"
)

type Model2D struct {
	ICFile  string
	Graph   bool
	Profile string // cpu, mem or empty
	Perf    bool
	Verbose bool
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional shallow water solver, writes a height frame file",
	Long: `
Runs the shallow water equations on a periodic square with the Jiang-Tadmor
central scheme, checking conservation and writing the water height after
every frame.

central2d 2D -i dam_break -o waves.out -n 200 -w 2 -f 0.01 -F 50`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters2D
		)
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		m2d.Graph, _ = cmd.Flags().GetBool("graph")
		m2d.Profile, _ = cmd.Flags().GetString("profile")
		m2d.Perf, _ = cmd.Flags().GetBool("perf")
		m2d.Verbose = viper.GetBool("verbose")
		if ip, err = processInput(m2d, viper.GetViper()); err != nil {
			return
		}
		cmd.SilenceUsage = true
		return Run2D(m2d, ip, os.Stdout)
	},
}

// paramKeys maps the flag and config keys onto the input parameters.
var paramKeys = []struct {
	key   string
	apply func(v *viper.Viper, key string, ip *InputParameters.InputParameters2D)
}{
	{"initialConditions", func(v *viper.Viper, k string, ip *InputParameters.InputParameters2D) { ip.InitType = v.GetString(k) }},
	{"outputFile", func(v *viper.Viper, k string, ip *InputParameters.InputParameters2D) { ip.OutputFile = v.GetString(k) }},
	{"cells", func(v *viper.Viper, k string, ip *InputParameters.InputParameters2D) { ip.NX = v.GetInt(k) }},
	{"width", func(v *viper.Viper, k string, ip *InputParameters.InputParameters2D) { ip.Width = v.GetFloat64(k) }},
	{"frameTime", func(v *viper.Viper, k string, ip *InputParameters.InputParameters2D) { ip.FrameTime = v.GetFloat64(k) }},
	{"frames", func(v *viper.Viper, k string, ip *InputParameters.InputParameters2D) { ip.Frames = v.GetInt(k) }},
	{"cfl", func(v *viper.Viper, k string, ip *InputParameters.InputParameters2D) { ip.CFL = v.GetFloat64(k) }},
	{"theta", func(v *viper.Viper, k string, ip *InputParameters.InputParameters2D) { ip.Theta = v.GetFloat64(k) }},
	{"gravity", func(v *viper.Viper, k string, ip *InputParameters.InputParameters2D) { ip.Gravity = v.GetFloat64(k) }},
	{"procLimit", func(v *viper.Viper, k string, ip *InputParameters.InputParameters2D) { ip.ProcLimit = v.GetInt(k) }},
}

/*
processInput layers the parameters: built in defaults, then the YAML input
file if one is named, then every key set on the command line, in the
environment or in the config file.
*/
func processInput(m2d *Model2D, v *viper.Viper) (ip *InputParameters.InputParameters2D, err error) {
	ip = InputParameters.NewInputParameters2D()
	if len(m2d.ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(m2d.ICFile); err != nil {
			return nil, err
		}
		if err = ip.Parse(data); err != nil {
			exampleFile := `
########################################
Title: "Circular dam break"
InitType: dam_break # Can be pond, river or wave
NX: 200
Width: 2.0
CFL: 0.45
FrameTime: 0.01
Frames: 50
OutputFile: waves.out
########################################
`
			return nil, fmt.Errorf("unable to parse %s: %w\nExample File:%s", m2d.ICFile, err, exampleFile)
		}
	}
	for _, pk := range paramKeys {
		if v.IsSet(pk.key) {
			pk.apply(v, pk.key, ip)
		}
	}
	return ip, ip.Validate()
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	var (
		ip    = InputParameters.NewInputParameters2D()
		flags = TwoDCmd.Flags()
	)
	flags.StringP("initialConditions", "i", ip.InitType, "initial conditions: dam_break, pond, river or wave")
	flags.StringP("outputFile", "o", ip.OutputFile, "output file name")
	flags.IntP("cells", "n", ip.NX, "number of cells per side")
	flags.Float64P("width", "w", ip.Width, "domain width")
	flags.Float64P("frameTime", "f", ip.FrameTime, "time between frames")
	flags.IntP("frames", "F", ip.Frames, "number of frames")
	flags.Float64("cfl", ip.CFL, "CFL number - decrease for stability")
	flags.Float64("theta", ip.Theta, "MinMod limiter theta, in (0,2]")
	flags.Float64("gravity", ip.Gravity, "gravitational acceleration")
	flags.IntP("procLimit", "p", ip.ProcLimit, "maximum number of go routines per pass, 0 uses every CPU")
	flags.StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- InitType\n\t- NX\n\t- CFL")
	flags.BoolP("graph", "g", false, "plot the volume history and the final centerline height in the terminal")
	flags.String("profile", "", "write a pprof profile to the current directory: cpu or mem")
	flags.Bool("perf", false, "count CPU instructions per frame with hardware counters (linux)")
	for _, pk := range paramKeys {
		_ = viper.BindPFlag(pk.key, flags.Lookup(pk.key))
	}
}

func Run2D(m2d *Model2D, ip *InputParameters.InputParameters2D, out io.Writer) (err error) {
	var (
		logger *zap.Logger
		m      *Shallow2D.Model
	)
	if logger, err = newLogger(m2d.Verbose); err != nil {
		return
	}
	defer func() { _ = logger.Sync() }()
	FV2D.SetLogger(logger)
	if m2d.Verbose {
		ip.Print()
	}
	if m, err = Shallow2D.NewModel(ip); err != nil {
		return
	}
	if m2d.Perf {
		m.FrameHook = perfFrameHook(out, logger)
	}
	switch m2d.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile type %q, must be cpu or mem", m2d.Profile)
	}
	if err = m.Solve(out); err != nil {
		logger.Error("solve", zap.Error(err))
		return
	}
	logger.Debug("memory", zap.String("usage", utils.GetMemUsage()))
	if m2d.Graph {
		PlotHistory(out, m)
	}
	return
}

// PlotHistory draws the volume of every frame and the final height along the
// middle row of the grid.
func PlotHistory(out io.Writer, m *Shallow2D.Model) {
	if vols := m.Volumes(); len(vols) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(vols,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("volume per frame"),
		))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, asciigraph.Plot(m.Centerline(),
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("height along y = %g at t = %g",
			(float64(m.Sim.NY/2)+0.5)*m.Sim.DY, m.Sim.Time())),
	))
}
