package systems

import (
	"github.com/spaghettifunk/ombra/engine/resources"
)

/**
 * @brief Per-sprite animation playback state.
 *
 * An AnimationState owns the frame metadata of one sprite and steps through
 * frames as time advances. Loading frame data resets playback and writes the
 * frame cell size into the sprite's frame bounds; discarding it freezes the
 * sprite on whatever its binding reports.
 */
type AnimationState struct {
	frameData *resources.FrameData
	bounds    *resources.FrameBounds

	current int
	elapsed float64
	playing bool
}

// NewAnimationState creates playback state writing into the given
// frame-bounds record. bounds may be nil for detached states.
func NewAnimationState(bounds *resources.FrameBounds) *AnimationState {
	return &AnimationState{bounds: bounds}
}

// AttachBounds points the state at the frame-bounds record it should keep in
// sync. States created before their owning sprite attach the record here.
func (as *AnimationState) AttachBounds(bounds *resources.FrameBounds) {
	as.bounds = bounds
	if as.frameData != nil && bounds != nil {
		bounds.Width = as.frameData.FrameWidth
		bounds.Height = as.frameData.FrameHeight
	}
}

// HasFrameData reports whether frame metadata is currently loaded.
func (as *AnimationState) HasFrameData() bool {
	return as.frameData != nil
}

// DiscardFrameData drops the frame metadata and halts playback. Safe to call
// when no data is loaded.
func (as *AnimationState) DiscardFrameData() {
	as.frameData = nil
	as.current = 0
	as.elapsed = 0
	as.playing = false
}

// LoadFrameData installs new frame metadata, restarting playback at frame
// zero and propagating the frame cell size to the sprite's frame bounds.
func (as *AnimationState) LoadFrameData(fd *resources.FrameData) {
	as.frameData = fd
	as.current = 0
	as.elapsed = 0
	as.playing = fd != nil && fd.FPS > 0 && fd.FrameCount > 1

	if fd != nil && as.bounds != nil {
		as.bounds.Width = fd.FrameWidth
		as.bounds.Height = fd.FrameHeight
	}
}

// FrameData returns the loaded metadata, nil when none is present.
func (as *AnimationState) FrameData() *resources.FrameData {
	return as.frameData
}

// CurrentFrame returns the index of the frame being shown.
func (as *AnimationState) CurrentFrame() int {
	return as.current
}

// CurrentRect returns the source region of the current frame within the
// bound sheet. The zero rect is returned when no frame data is loaded.
func (as *AnimationState) CurrentRect() resources.FrameRect {
	if as.frameData == nil {
		return resources.FrameRect{}
	}
	return as.frameData.Rect(as.current)
}

// Playing reports whether playback is advancing.
func (as *AnimationState) Playing() bool {
	return as.playing
}

// Update advances playback by delta seconds.
func (as *AnimationState) Update(delta float64) {
	if !as.playing || as.frameData == nil || as.frameData.FPS <= 0 {
		return
	}

	as.elapsed += delta
	frameTime := 1.0 / as.frameData.FPS
	for as.elapsed >= frameTime {
		as.elapsed -= frameTime
		as.current++
		if as.current >= as.frameData.FrameCount {
			if as.frameData.Loop {
				as.current = 0
			} else {
				as.current = as.frameData.FrameCount - 1
				as.playing = false
				break
			}
		}
	}
}

/**
 * @brief Owns every AnimationState and advances them once per frame.
 */
type AnimationSystem struct {
	states []*AnimationState
}

func NewAnimationSystem() (*AnimationSystem, error) {
	return &AnimationSystem{}, nil
}

// CreateState registers a new playback state bound to the given frame-bounds
// record.
func (asys *AnimationSystem) CreateState(bounds *resources.FrameBounds) *AnimationState {
	state := NewAnimationState(bounds)
	asys.states = append(asys.states, state)
	return state
}

// Update advances all registered states by delta seconds.
func (asys *AnimationSystem) Update(delta float64) {
	for _, s := range asys.states {
		s.Update(delta)
	}
}

func (asys *AnimationSystem) Shutdown() error {
	asys.states = nil
	return nil
}
