package core

import "time"

const AVG_COUNT uint8 = 30

// FrameMetrics counts update and render invocations and publishes their
// rates once per second of accumulated render delta.
type FrameMetrics struct {
	frameAVGCounter uint8
	msTimes         [AVG_COUNT]float64
	msAVG           float64

	updates     int
	renders     int
	accumulated time.Duration

	updateRate float64
	renderRate float64
}

func NewFrameMetrics() *FrameMetrics {
	return &FrameMetrics{}
}

func (m *FrameMetrics) RecordUpdate() {
	m.updates++
}

// RecordRender counts a render observing delta. It returns true when a full
// second has accumulated and the rates were refreshed.
func (m *FrameMetrics) RecordRender(delta time.Duration) bool {
	// Calculate frame ms average
	frameMS := float64(delta) / float64(time.Millisecond)
	m.msTimes[m.frameAVGCounter] = frameMS
	if m.frameAVGCounter == AVG_COUNT-1 {
		m.msAVG = 0
		for i := uint8(0); i < AVG_COUNT; i++ {
			m.msAVG += m.msTimes[i]
		}
		m.msAVG /= float64(AVG_COUNT)
	}
	m.frameAVGCounter++
	m.frameAVGCounter %= AVG_COUNT

	m.renders++
	m.accumulated += delta
	if m.accumulated < time.Second {
		return false
	}

	seconds := m.accumulated.Seconds()
	m.updateRate = float64(m.updates) / seconds
	m.renderRate = float64(m.renders) / seconds
	m.updates = 0
	m.renders = 0
	m.accumulated = 0
	return true
}

// UpdateRate is the number of updates per second over the last window.
func (m *FrameMetrics) UpdateRate() float64 {
	return m.updateRate
}

// RenderRate is the number of renders per second over the last window.
func (m *FrameMetrics) RenderRate() float64 {
	return m.renderRate
}

// FrameTime is the average render delta in milliseconds over the last
// AVG_COUNT renders.
func (m *FrameMetrics) FrameTime() float64 {
	return m.msAVG
}
