package core

// SpriteID names an image the game draws or collides with.
// The game refers to sprites only by id; the frontend owns the pixels.
type SpriteID int

const (
	SpriteBird0 SpriteID = iota // wings up
	SpriteBird1                 // wings level
	SpriteBird2                 // wings down
	SpritePipeTop
	SpritePipeBottom
	SpriteBase
	SpriteBackground

	spriteCount
)

// SpriteCount is the number of known sprites.
const SpriteCount = int(spriteCount)

// String returns the sprite name.
func (id SpriteID) String() string {
	switch id {
	case SpriteBird0:
		return "bird0"
	case SpriteBird1:
		return "bird1"
	case SpriteBird2:
		return "bird2"
	case SpritePipeTop:
		return "pipe_top"
	case SpritePipeBottom:
		return "pipe_bottom"
	case SpriteBase:
		return "base"
	case SpriteBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Align controls how text is anchored on its position.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)
