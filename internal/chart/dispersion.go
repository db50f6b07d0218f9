package chart

import (
	"image"
	"strconv"
)

const rowHeight = 28

// DispersionPlot draws one row per word with a tick at every token offset
// where it occurs, across a text of total tokens.
func DispersionPlot(words []string, offsets map[string][]int, total int, style Style) (*image.RGBA, error) {
	if len(words) == 0 || total <= 0 {
		return nil, ErrNoData
	}
	pal, err := style.resolve()
	if err != nil {
		return nil, err
	}

	labelWidth := 0
	for _, w := range words {
		labelWidth = max(labelWidth, textWidth(w))
	}

	left := labelWidth + 16
	plotWidth := 640
	plotH := len(words) * rowHeight
	width := left + plotWidth + marginRight
	height := marginTop + plotH + 40
	img := newCanvas(width, height, pal.bg)

	xFor := func(offset int) int { return left + offset*(plotWidth-1)/max(total-1, 1) }
	colors := seriesColors(len(words))

	for row, w := range words {
		mid := marginTop + row*rowHeight + rowHeight/2
		hline(img, left, left+plotWidth, mid, pal.grid)
		drawText(img, left-8-textWidth(w), mid+face.Ascent/2, w, pal.text)
		for _, off := range offsets[w] {
			vline(img, xFor(off), mid-rowHeight/2+4, mid+rowHeight/2-4, colors[row])
		}
	}

	bottom := marginTop + plotH
	hline(img, left, left+plotWidth, bottom, pal.axis)
	vline(img, left, marginTop, bottom, pal.axis)

	step := tickStep(total, 10)
	for v := 0; v < total; v += step {
		x := xFor(v)
		vline(img, x, bottom, bottom+3, pal.axis)
		s := strconv.Itoa(v)
		drawNumber(img, x-numberWidth(s)/2, bottom+6, s, pal.text)
	}

	title := "Lexical Dispersion Plot"
	drawText(img, left+(plotWidth-textWidth(title))/2, marginTop-12, title, pal.text)
	xlabel := "Word Offset"
	drawText(img, left+(plotWidth-textWidth(xlabel))/2, height-8, xlabel, pal.text)

	return img, nil
}
