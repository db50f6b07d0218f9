// Package chart renders word statistics as PNG images: a frequency line plot
// and a lexical dispersion plot. Labels use the basicfont 7x13 face.
package chart
