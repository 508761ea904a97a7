package core

// Tone is the semantic style of a screen cell. The front-end maps tones to
// concrete terminal colors, so game code never deals with color values.
type Tone uint8

const (
	ToneDefault Tone = iota
	ToneFrame        // grid lines
	ToneMuted        // hints, empty cells
	ToneTitle
	ToneScore
	ToneWin
	ToneLose
	ToneEmpty // empty tile background
	ToneTile2
	ToneTile4
	ToneTile8
	ToneTile16
	ToneTile32
	ToneTile64
	ToneTileHigh  // 128 through 2048
	ToneTileSuper // beyond 2048
	ToneFlash     // tile that just merged or appeared
)

// TileTone returns the tone used to draw a tile of the given value.
func TileTone(value int) Tone {
	switch {
	case value <= 0:
		return ToneEmpty
	case value == 2:
		return ToneTile2
	case value == 4:
		return ToneTile4
	case value == 8:
		return ToneTile8
	case value == 16:
		return ToneTile16
	case value == 32:
		return ToneTile32
	case value == 64:
		return ToneTile64
	case value <= 2048:
		return ToneTileHigh
	default:
		return ToneTileSuper
	}
}

// IsTile reports whether the tone is a tile background.
func (t Tone) IsTile() bool {
	return t >= ToneEmpty && t <= ToneFlash
}
