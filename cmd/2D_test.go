package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestProcessInput(t *testing.T) {
	var (
		dir    = t.TempDir()
		ipFile = filepath.Join(dir, "input.yaml")
	)
	fileInput := []byte(`
Title: Test Case
InitType: wave # Can be dam_break, pond or river
NX: 64
Width: 4.0
CFL: 0.3
Frames: 7
`)
	assert.Nil(t, os.WriteFile(ipFile, fileInput, 0644))
	{ // Defaults only
		ip, err := processInput(&Model2D{}, viper.New())
		assert.Nil(t, err)
		assert.Equal(t, "dam_break", ip.InitType)
		assert.Equal(t, 200, ip.NX)
		assert.Equal(t, 50, ip.Frames)
	}
	{ // Input file over defaults
		ip, err := processInput(&Model2D{ICFile: ipFile}, viper.New())
		assert.Nil(t, err)
		assert.Equal(t, "Test Case", ip.Title)
		assert.Equal(t, "wave", ip.InitType)
		assert.Equal(t, 64, ip.NX)
		assert.Equal(t, 4., ip.Width)
		assert.Equal(t, 0.3, ip.CFL)
		assert.Equal(t, 7, ip.Frames)
		assert.Equal(t, 0.01, ip.FrameTime)
		ip.Print()
	}
	{ // Keys that are set override the input file
		v := viper.New()
		v.Set("cells", 32)
		v.Set("initialConditions", "river")
		v.Set("frameTime", "0.02")
		ip, err := processInput(&Model2D{ICFile: ipFile}, v)
		assert.Nil(t, err)
		assert.Equal(t, 32, ip.NX)
		assert.Equal(t, "river", ip.InitType)
		assert.Equal(t, 0.02, ip.FrameTime)
		assert.Equal(t, 7, ip.Frames)
	}
	{ // Errors
		_, err := processInput(&Model2D{ICFile: filepath.Join(dir, "missing.yaml")}, viper.New())
		assert.NotNil(t, err)
		bad := filepath.Join(dir, "bad.yaml")
		assert.Nil(t, os.WriteFile(bad, []byte("NX: [1, 2"), 0644))
		_, err = processInput(&Model2D{ICFile: bad}, viper.New())
		assert.NotNil(t, err)
		assert.True(t, strings.Contains(err.Error(), "Example File"))
		v := viper.New()
		v.Set("cells", -4)
		_, err = processInput(&Model2D{}, v)
		assert.NotNil(t, err)
	}
}

func TestRun2D(t *testing.T) {
	var (
		dir = t.TempDir()
		buf bytes.Buffer
	)
	v := viper.New()
	v.Set("cells", 16)
	v.Set("frames", 3)
	v.Set("initialConditions", "wave")
	v.Set("outputFile", filepath.Join(dir, "waves.out"))
	ip, err := processInput(&Model2D{}, v)
	assert.Nil(t, err)
	assert.Nil(t, Run2D(&Model2D{Graph: true}, ip, &buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# wave\n-\n  Volume: "))
	assert.Equal(t, 3, strings.Count(out, "\nTime: "))
	assert.True(t, strings.Contains(out, "# Size: 16\n"))
	assert.True(t, strings.Contains(out, "volume per frame"))
	fi, err := os.Stat(ip.OutputFile)
	assert.Nil(t, err)
	assert.Equal(t, int64(8+4*4*16*16), fi.Size())
	{ // Unknown profile type
		assert.NotNil(t, Run2D(&Model2D{Profile: "gpu"}, ip, &bytes.Buffer{}))
	}
}
