package InputParameters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestInputParameters(t *testing.T) {
	{ // Defaults are valid and square
		ip := NewInputParameters2D()
		assert.Nil(t, ip.Validate())
		NX, NY, W, H := ip.GridSize()
		assert.Equal(t, 200, NX)
		assert.Equal(t, 200, NY)
		assert.Equal(t, 2., W)
		assert.Equal(t, 2., H)
	}
	{ // Parse overlays the defaults
		ip := NewInputParameters2D()
		data := []byte(`
########################################
Title: "Wave on a river"
InitType: wave
NX: 100
NY: 50
Frames: 10
CFL: 0.3
########################################
`)
		assert.Nil(t, ip.Parse(data))
		assert.Equal(t, "Wave on a river", ip.Title)
		assert.Equal(t, "wave", ip.InitType)
		assert.Equal(t, 10, ip.Frames)
		assert.Equal(t, 0.3, ip.CFL)
		assert.Equal(t, 0.01, ip.FrameTime)
		assert.Equal(t, "waves.out", ip.OutputFile)
		NX, NY, W, H := ip.GridSize()
		assert.Equal(t, 100, NX)
		assert.Equal(t, 50, NY)
		assert.Equal(t, 2., W)
		assert.Equal(t, 1., H)
		assert.Nil(t, ip.Validate())
	}
	{ // Malformed document
		ip := NewInputParameters2D()
		assert.NotNil(t, ip.Parse([]byte("NX: [1, 2")))
		assert.NotNil(t, ip.Parse([]byte("NX: many")))
	}
	{ // Every failure is reported
		ip := NewInputParameters2D()
		ip.NX = -1
		ip.Width = 0
		ip.Theta = 3
		ip.Frames = -2
		ip.OutputFile = " "
		err := ip.Validate()
		assert.NotNil(t, err)
		errs := multierr.Errors(err)
		assert.Equal(t, 7, len(errs)) // NY and Height follow NX and Width
		assert.True(t, strings.Contains(err.Error(), "NX must be positive"))
		assert.True(t, strings.Contains(err.Error(), "OutputFile"))
	}
}
