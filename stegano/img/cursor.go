package img

const (
	// samples per pixel in an RGBA buffer; the last one is alpha
	SamplesPerPixel = 4
	alphaSample = SamplesPerPixel - 1
	// R, G and B each carry one bit
	BitsPerPixel = 3
)

/*
 * channelCursor walks an RGBA sample buffer and yields only the samples that
 * are allowed to carry data. Alpha is never one of them.
 */
type channelCursor struct {
	pos	int
	size	int
}

func newChannelCursor( size int ) *channelCursor {
	return &channelCursor{ 0, size }
}

// Next returns the index of the next usable sample, or false at the end.
func(c *channelCursor) Next() (int, bool) {
	if c.pos % SamplesPerPixel == alphaSample {
		c.pos++
	}
	if c.pos >= c.size {
		return 0, false
	}
	idx := c.pos
	c.pos++
	return idx, true
}

// writeByte stores b MSB first into the LSBs of the next 8 usable samples.
func(c *channelCursor) writeByte( pix []byte, b byte ) bool {
	for j := 7; j >= 0; j-- {
		idx, ok := c.Next()
		if !ok {
			return false
		}
		pix[idx] = (pix[idx] & 0xfe) | ((b >> j) & 1)
	}
	return true
}

func(c *channelCursor) readByte( pix []byte ) (byte, bool) {
	b := byte(0)
	for j := 0; j < 8; j++ {
		idx, ok := c.Next()
		if !ok {
			return 0, false
		}
		b = (b << 1) | (pix[idx] & 1)
	}
	return b, true
}
