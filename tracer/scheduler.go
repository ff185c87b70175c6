package tracer

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split a frame into contiguous blocks of rows that together cover
	// the whole frame, in top-to-bottom order.
	Schedule(frameW, frameH int) []BlockRequest
}

// The fixed scheduler splits a frame into blocks holding at most maxRows
// rows. This bounds the number of lanes in every traced batch.
type fixedScheduler struct {
	maxRows int
}

// Create a scheduler emitting blocks of at most maxRows rows. A non-positive
// maxRows yields a single block for the whole frame.
func NewFixedScheduler(maxRows int) BlockScheduler {
	return &fixedScheduler{maxRows: maxRows}
}

// Rows are distributed evenly across ceil(frameH / maxRows) blocks. Rows
// that don't divide evenly are appended to the first blocks.
func (sch *fixedScheduler) Schedule(frameW, frameH int) []BlockRequest {
	if frameH <= 0 {
		return nil
	}

	maxRows := sch.maxRows
	if maxRows <= 0 || maxRows > frameH {
		maxRows = frameH
	}

	numBlocks := (frameH + maxRows - 1) / maxRows
	rowsPerBlock := frameH / numBlocks
	extraRows := frameH - rowsPerBlock*numBlocks

	blocks := make([]BlockRequest, numBlocks)
	blockY := 0
	for idx := range blocks {
		blockH := rowsPerBlock
		if idx < extraRows {
			blockH++
		}
		blocks[idx] = BlockRequest{
			FrameW: frameW,
			FrameH: frameH,
			BlockY: blockY,
			BlockH: blockH,
		}
		blockY += blockH
	}

	return blocks
}
