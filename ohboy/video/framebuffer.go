package video

// Color is one of the four shades the DMG LCD can display, as a palette
// index: 0 is the lightest shade, 3 the darkest.
type Color byte

const (
	White     Color = 0
	LightGray Color = 1
	DarkGray  Color = 2
	Black     Color = 3
)

const (
	FramebufferWidth  = 160
	FramebufferHeight = 144
	FramebufferSize   = FramebufferWidth * FramebufferHeight
)

// FrameBuffer holds the 160x144 palette-indexed screen surface. It is
// row-major: the pixel at (x, y) lives at index y*160 + x.
type FrameBuffer struct {
	buffer []Color
}

func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		buffer: make([]Color, FramebufferSize),
	}
}

func (fb *FrameBuffer) GetPixel(x, y int) Color {
	return fb.buffer[y*FramebufferWidth+x]
}

func (fb *FrameBuffer) SetPixel(x, y int, color Color) {
	fb.buffer[y*FramebufferWidth+x] = color
}

// ToSlice exposes the raw pixel slice. The caller must only read it between
// frame steps.
func (fb *FrameBuffer) ToSlice() []Color {
	return fb.buffer
}

// Fill sets every pixel to the given color.
func (fb *FrameBuffer) Fill(color Color) {
	for i := range fb.buffer {
		fb.buffer[i] = color
	}
}
