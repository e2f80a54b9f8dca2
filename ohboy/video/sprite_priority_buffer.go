package video

// spritePriorityBuffer manages sprite-to-pixel ownership for DMG rendering,
// see https://gbdev.io/pandocs/OAM.html#drawing-priority.
//
// Priority rules between overlapping sprites:
//   - sprites with lower X coordinates have priority
//   - when X coordinates match, lower OAM indices win.
//
// Instead of sorting the selected sprites, ownership is precomputed per
// pixel: each sprite (in OAM order) tries to claim the 8 pixels it covers,
// and during rendering a sprite only draws the pixels it owns.
type spritePriorityBuffer struct {
	// ownerIndex tracks which sprite (by OAM index) owns each pixel.
	// -1 means no sprite owns this pixel.
	ownerIndex [FramebufferWidth]int

	// ownerX tracks the X coordinate of the sprite that owns each pixel,
	// used for priority comparison when multiple sprites overlap.
	ownerX [FramebufferWidth]int
}

// clear resets the buffer for a new scanline.
func (s *spritePriorityBuffer) clear() {
	for i := range s.ownerIndex {
		s.ownerIndex[i] = -1
		s.ownerX[i] = 0xFF
	}
}

// tryClaimPixel attempts to claim ownership of a pixel for a sprite.
// Returns true if the sprite wins priority and claims the pixel.
func (s *spritePriorityBuffer) tryClaimPixel(pixelX, spriteIndex, spriteX int) bool {
	if pixelX < 0 || pixelX >= FramebufferWidth {
		return false
	}

	owner := s.ownerIndex[pixelX]
	if owner == -1 || spriteX < s.ownerX[pixelX] ||
		(spriteX == s.ownerX[pixelX] && spriteIndex < owner) {
		s.ownerIndex[pixelX] = spriteIndex
		s.ownerX[pixelX] = spriteX
		return true
	}

	return false
}

// getOwner returns the sprite index that owns a pixel, or -1 if none.
func (s *spritePriorityBuffer) getOwner(pixelX int) int {
	if pixelX < 0 || pixelX >= FramebufferWidth {
		return -1
	}
	return s.ownerIndex[pixelX]
}
