package main

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// showChart opens a window with the rendered chart and blocks until it is closed.
func showChart(img image.Image, title string) {
	a := app.NewWithID("com.imrehg.typhoons")
	w := a.NewWindow(title)
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(fyne.NewSize(600, 450))
	w.SetContent(c)
	b := img.Bounds()
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.ShowAndRun()
}
