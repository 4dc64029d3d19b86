package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// stubRand returns scripted values and records the bounds it was asked for.
type stubRand struct {
	values []int
	bounds []int
}

func (r *stubRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[(len(r.bounds)-1)%len(r.values)]
	return v % n
}

// rectSheet is a sprite sheet of fully solid rectangles.
type rectSheet struct {
	sizes map[core.SpriteID][2]int
	masks map[core.SpriteID]*core.Mask
}

func newRectSheet(birdW, birdH, pipeW, pipeH int) *rectSheet {
	s := &rectSheet{
		sizes: map[core.SpriteID][2]int{},
		masks: map[core.SpriteID]*core.Mask{},
	}
	for _, id := range []core.SpriteID{core.SpriteBird0, core.SpriteBird1, core.SpriteBird2} {
		s.set(id, birdW, birdH)
	}
	s.set(core.SpritePipeTop, pipeW, pipeH)
	s.set(core.SpritePipeBottom, pipeW, pipeH)
	s.set(core.SpriteBase, 672, 224)
	s.set(core.SpriteBackground, 576, 1024)
	return s
}

func (s *rectSheet) set(id core.SpriteID, w, h int) {
	m := core.NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y)
		}
	}
	s.sizes[id] = [2]int{w, h}
	s.masks[id] = m
}

// hollowBird keeps the bird's size but clears its silhouette.
func (s *rectSheet) hollowBird() *rectSheet {
	for _, id := range []core.SpriteID{core.SpriteBird0, core.SpriteBird1, core.SpriteBird2} {
		w, h := s.Size(id)
		s.masks[id] = core.NewMask(w, h)
	}
	return s
}

func (s *rectSheet) Size(id core.SpriteID) (int, int) {
	sz := s.sizes[id]
	return sz[0], sz[1]
}

func (s *rectSheet) Silhouette(id core.SpriteID) *core.Mask {
	return s.masks[id]
}

// drawCall is one recorded renderer call.
type drawCall struct {
	sprite   core.SpriteID
	text     string
	pos      core.Vec
	rotation float64
	align    core.Align
	isText   bool
}

// recorder is a Renderer that keeps every call.
type recorder struct {
	calls []drawCall
}

func (r *recorder) DrawSprite(id core.SpriteID, pos core.Vec, rotation float64) {
	r.calls = append(r.calls, drawCall{sprite: id, pos: pos, rotation: rotation})
}

func (r *recorder) DrawText(text string, pos core.Vec, align core.Align) {
	r.calls = append(r.calls, drawCall{text: text, pos: pos, align: align, isText: true})
}

func (r *recorder) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.isText {
			out = append(out, c.text)
		}
	}
	return out
}

func defaultCfg() config.FlappyConfig {
	return config.DefaultFlappyConfig()
}
