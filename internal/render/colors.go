package render

import "fmt"

// RGB is a 24-bit terminal foreground color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) escape() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

const resetEscape = "\x1b[0m"

// Semantic color assignments. One fixed color per token category; the
// bracket color is only used when rainbow brackets are off.
var (
	colorNumber    = RGB{181, 206, 168}
	colorString    = RGB{206, 145, 120}
	colorChar      = RGB{215, 186, 125}
	colorTrue      = RGB{106, 176, 76}
	colorFalse     = RGB{224, 108, 117}
	colorVoid      = RGB{128, 128, 128}
	colorLambda    = RGB{197, 134, 192}
	colorBytes     = RGB{78, 201, 176}
	colorBox       = RGB{229, 192, 123}
	colorSum       = RGB{79, 193, 255}
	colorRecordKey = RGB{156, 220, 254}
	colorUnknown   = RGB{255, 85, 85}
	colorDefault   = RGB{212, 212, 212}
	colorBracket   = RGB{212, 212, 212}
)

// rainbowPalette is cycled once per nested bracket level when rainbow
// brackets are enabled; open and close of one container share a slot.
var rainbowPalette = []RGB{
	{255, 215, 0},
	{218, 112, 214},
	{135, 206, 250},
	{255, 140, 105},
	{144, 238, 144},
	{240, 128, 128},
}

func bracketColor(s Settings, level int) RGB {
	if !s.RainbowBracket {
		return colorBracket
	}
	return rainbowPalette[level%len(rainbowPalette)]
}
