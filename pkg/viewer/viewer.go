// Package viewer shows a rendered framebuffer in a window. It is the
// presentation collaborator: the rendering core never depends on it.
package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Show opens a window displaying the image and blocks until it is closed.
func Show(title string, img image.Image) {
	a := app.New()
	w := a.NewWindow(title)

	imgCanvas := canvas.NewImageFromImage(img)
	imgCanvas.FillMode = canvas.ImageFillContain

	bounds := img.Bounds()
	displayW := float32(bounds.Dx())
	displayH := float32(bounds.Dy())
	// Keep very large renders from producing an unusable window.
	const maxDisplay = 1024
	if displayW > maxDisplay {
		displayH *= maxDisplay / displayW
		displayW = maxDisplay
	}
	if displayH > maxDisplay {
		displayW *= maxDisplay / displayH
		displayH = maxDisplay
	}
	imgCanvas.SetMinSize(fyne.NewSize(displayW, displayH))

	w.SetContent(imgCanvas)
	w.ShowAndRun()
}
