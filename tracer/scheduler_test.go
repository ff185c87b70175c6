package tracer

import "testing"

func TestFixedScheduler(t *testing.T) {
	type spec struct {
		maxRows int
		frameH  int
		expRows []int
	}
	specs := []spec{
		{0, 10, []int{10}},
		{16, 10, []int{10}},
		{5, 10, []int{5, 5}},
		{4, 10, []int{4, 3, 3}},
		{3, 10, []int{3, 3, 2, 2}},
		{1, 3, []int{1, 1, 1}},
		{4, 0, nil},
	}

	for index, s := range specs {
		blocks := NewFixedScheduler(s.maxRows).Schedule(7, s.frameH)
		if len(blocks) != len(s.expRows) {
			t.Fatalf("[spec %d] expected %d blocks; got %d", index, len(s.expRows), len(blocks))
		}

		nextY := 0
		for blockIndex, block := range blocks {
			if block.BlockH != s.expRows[blockIndex] {
				t.Fatalf("[spec %d] expected block %d to be assigned %d rows; got %d", index, blockIndex, s.expRows[blockIndex], block.BlockH)
			}
			if block.BlockY != nextY {
				t.Fatalf("[spec %d] expected block %d to start at row %d; got %d", index, blockIndex, nextY, block.BlockY)
			}
			if block.FrameW != 7 || block.FrameH != s.frameH {
				t.Fatalf("[spec %d] unexpected frame dimensions %dx%d", index, block.FrameW, block.FrameH)
			}
			nextY += block.BlockH
		}
		if nextY != s.frameH {
			t.Fatalf("[spec %d] expected blocks to cover %d rows; got %d", index, s.frameH, nextY)
		}
	}
}
