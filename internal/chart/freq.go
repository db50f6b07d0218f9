package chart

import (
	"errors"
	"image"
	"strconv"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

const (
	marginTop    = 36
	marginRight  = 24
	marginLeft   = 48
	plotHeight   = 320
	minPlotWidth = 480
	slotWidth    = 48
)

// FrequencyPlot draws counts as a line plot, one labelled point per sample,
// in the order given. Sample labels are written vertically under the axis.
func FrequencyPlot(labels []string, values []int, title string, style Style) (*image.RGBA, error) {
	if len(labels) == 0 || len(labels) != len(values) {
		return nil, ErrNoData
	}
	pal, err := style.resolve()
	if err != nil {
		return nil, err
	}

	longest := 0
	top := 0
	for i, l := range labels {
		longest = max(longest, textWidth(l))
		top = max(top, values[i])
	}

	plotWidth := max(minPlotWidth, len(labels)*slotWidth)
	width := marginLeft + plotWidth + marginRight
	height := marginTop + plotHeight + longest + 24
	img := newCanvas(width, height, pal.bg)

	x0, y0 := marginLeft, marginTop+plotHeight
	step := tickStep(top, 8)
	yMax := ((top + step - 1) / step) * step
	if yMax == 0 {
		yMax = step
	}
	yFor := func(v int) int { return y0 - v*plotHeight/yMax }
	xFor := func(i int) int { return x0 + slotWidth/2 + i*(plotWidth-slotWidth)/max(len(labels)-1, 1) }

	for v := 0; v <= yMax; v += step {
		y := yFor(v)
		hline(img, x0, x0+plotWidth, y, pal.grid)
		s := strconv.Itoa(v)
		drawNumber(img, x0-6-numberWidth(s), y-2, s, pal.text)
	}
	for i := range labels {
		vline(img, xFor(i), marginTop, y0, pal.grid)
	}

	vline(img, x0, marginTop, y0, pal.axis)
	hline(img, x0, x0+plotWidth, y0, pal.axis)

	series := seriesColors(1)[0]
	for i, v := range values {
		x, y := xFor(i), yFor(v)
		if i > 0 {
			line(img, xFor(i-1), yFor(values[i-1]), x, y, series)
		}
		marker(img, x, y, series)
		drawTextVertical(img, x-face.Height/2, y0+6, labels[i], pal.text)
	}

	if title != "" {
		drawText(img, (width-textWidth(title))/2, marginTop-12, title, pal.text)
	}
	drawText(img, 4, marginTop-12, "Counts", pal.text)

	return img, nil
}
