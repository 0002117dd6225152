package core

const AVG_COUNT uint8 = 30

// FrameMetrics keeps a rolling frame time average and a frames per second
// counter.
type FrameMetrics struct {
	FrameAVGCounter    uint8
	MStimes            [AVG_COUNT]float64
	MSavg              float64
	Frames             int32
	AccumulatedFrameMS float64
	FPS                float64
}

func NewFrameMetrics() *FrameMetrics {
	return &FrameMetrics{}
}

// Update records a frame that took frameElapsedTime seconds.
func (fm *FrameMetrics) Update(frameElapsedTime float64) {
	// Calculate frame ms average
	frame_ms := frameElapsedTime * 1000.0
	fm.MStimes[fm.FrameAVGCounter] = frame_ms
	if fm.FrameAVGCounter == AVG_COUNT-1 {
		sum := 0.0
		for i := uint8(0); i < AVG_COUNT; i++ {
			sum += fm.MStimes[i]
		}
		fm.MSavg = sum / float64(AVG_COUNT)
	}
	fm.FrameAVGCounter++
	fm.FrameAVGCounter %= AVG_COUNT

	// Count this frame, then roll the per-second window.
	fm.Frames++
	fm.AccumulatedFrameMS += frame_ms
	if fm.AccumulatedFrameMS >= 1000 {
		fm.FPS = float64(fm.Frames)
		fm.AccumulatedFrameMS -= 1000
		fm.Frames = 0
	}
}

func (fm *FrameMetrics) FPSValue() float64 {
	return fm.FPS
}

func (fm *FrameMetrics) FrameTime() float64 {
	return fm.MSavg
}

func (fm *FrameMetrics) Frame() (float64, float64) {
	return fm.FPS, fm.MSavg
}
