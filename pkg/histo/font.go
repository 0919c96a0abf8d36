package histo

import (
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
)

// goFont is used for all text in plots. It is compiled in, so it is
// there on machines with no fonts installed.
var goFont = font.Font{Typeface: "Go"}

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic("histo: parsing built in font: " + err.Error())
	}
	font.DefaultCache.Add(font.Collection{{Font: goFont, Face: f}})
	plot.DefaultFont = goFont
	plotter.DefaultFont = goFont
}
