package render

import "github.com/pgray/ohboy/ohboy/video"

// shadeRunes maps a palette index to a block character, lightest first.
var shadeRunes = [4]rune{' ', '░', '▒', '█'}

// halfBlockRune picks a character for a vertical pair of pixels. Equal
// shades collapse to one block; otherwise the darker half wins its side.
func halfBlockRune(top, bottom video.Color) rune {
	if top == bottom {
		return shadeRunes[top]
	}
	if top > bottom {
		return '▀'
	}
	return '▄'
}

// RenderFrameToHalfBlocks converts a framebuffer to text, two pixel rows per
// line. Used for headless frame snapshots.
func RenderFrameToHalfBlocks(fb *video.FrameBuffer) []string {
	lines := make([]string, 0, video.FramebufferHeight/2)

	for y := 0; y < video.FramebufferHeight; y += 2 {
		line := make([]rune, video.FramebufferWidth)
		for x := 0; x < video.FramebufferWidth; x++ {
			line[x] = halfBlockRune(fb.GetPixel(x, y), fb.GetPixel(x, y+1))
		}
		lines = append(lines, string(line))
	}

	return lines
}
