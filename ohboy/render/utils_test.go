package render

import (
	"testing"

	"github.com/pgray/ohboy/ohboy/video"
	"github.com/stretchr/testify/assert"
)

func TestRenderFrameToHalfBlocks(t *testing.T) {
	fb := video.NewFrameBuffer()
	fb.Fill(video.White)
	fb.SetPixel(0, 0, video.Black)
	fb.SetPixel(1, 1, video.Black)
	fb.SetPixel(2, 0, video.DarkGray)
	fb.SetPixel(2, 1, video.DarkGray)

	lines := RenderFrameToHalfBlocks(fb)

	assert.Equal(t, video.FramebufferHeight/2, len(lines))

	row := []rune(lines[0])
	assert.Equal(t, video.FramebufferWidth, len(row))
	assert.Equal(t, '▀', row[0], "dark top, light bottom")
	assert.Equal(t, '▄', row[1], "light top, dark bottom")
	assert.Equal(t, '▒', row[2], "equal shades collapse to one block")
	assert.Equal(t, ' ', row[3], "white stays blank")
}
