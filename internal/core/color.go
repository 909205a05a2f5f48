package core

// Color identifies a fill for a canvas pixel.
// Values are semantic slots; the platform layer decides the actual terminal color.
type Color uint8

// Fill slots used by the game renderer.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorBody
	ColorHead
	ColorFood
)

// String returns the slot name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBackground:
		return "background"
	case ColorBody:
		return "body"
	case ColorHead:
		return "head"
	case ColorFood:
		return "food"
	default:
		return "unknown"
	}
}
