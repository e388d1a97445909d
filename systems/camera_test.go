package systems

import (
	"strings"
	"testing"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraPinnedInSmallLevel(t *testing.T) {
	w := newTestWorld(t, []string{
		"          ",
		"1111111111",
	}, spawnAt(8, 0))

	stepN(w, 30, components.InputData{Right: true})

	c, ok := w.Camera()
	require.True(t, ok)
	pos := components.Camera.Get(c).Position
	assert.Zero(t, pos.X)
	assert.Zero(t, pos.Y)
}

func TestCameraFollowsAndClamps(t *testing.T) {
	rows := make([]string, 40)
	for i := range rows {
		rows[i] = strings.Repeat(" ", 100)
	}
	rows[39] = strings.Repeat("1", 100)
	w := newTestWorld(t, rows, spawnAt(50, 38))
	c, ok := w.Camera()
	require.True(t, ok)
	camera := components.Camera.Get(c)

	stepN(w, 200, components.InputData{})
	r := playerRect(t, w)
	assert.InDelta(t, r.CenterX()-cfg.Camera.ViewWidth/2, camera.Position.X, 0.5)
	assert.InDelta(t, w.Height-cfg.Camera.ViewHeight, camera.Position.Y, 1e-9, "bottom edge clamps")

	// Walk to the right edge; the view stops at the level bound.
	stepN(w, 150, components.InputData{Right: true})
	assert.LessOrEqual(t, camera.Position.X, w.Width-cfg.Camera.ViewWidth)
	assert.InDelta(t, w.Width-cfg.Camera.ViewWidth, camera.Position.X, 0.5)
}
