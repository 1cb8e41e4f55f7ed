package overlay

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	"crashbreak/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Kind selects the overlay wording.
type Kind int

const (
	KindBreak Kind = iota
	KindLunch
)

// Message is the text drawn over the scene.
type Message struct {
	Title  string
	Body   string
	Footer string
}

// MessageFor returns the wording for a reminder kind.
func MessageFor(kind Kind) Message {
	if kind == KindLunch {
		return Message{
			Title:  "FATAL: lunch.exe has not been run today",
			Body:   "Your body has stopped responding. Step away from the screen and eat something.",
			Footer: "Press any key to continue",
		}
	}
	return Message{
		Title:  "A problem has been detected and your eyes have been shut down",
		Body:   "EYE_STRAIN_DETECTED\n\nLook at something at least six metres away for twenty seconds.",
		Footer: "Press any key to continue",
	}
}

// Window is the full-screen crash screen.
type Window struct {
	mu      sync.Mutex
	window  fyne.Window
	rng     *rand.Rand
	visible bool
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates a hidden overlay window.
func New(app fyne.App) *Window {
	window := app.NewWindow("CrashBreak")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash windows are undecorated.
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	overlay := &Window{
		window: window,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	window.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) {
		overlay.dismiss()
	})
	window.Canvas().SetOnTypedRune(func(rune) {
		overlay.dismiss()
	})
	window.SetCloseIntercept(overlay.dismiss)
	return overlay
}

// Show renders style full-screen. Safe to call from any goroutine.
func (overlay *Window) Show(kind Kind, style model.Style) {
	fyne.Do(func() {
		overlay.mu.Lock()
		resolved := model.ResolveStyle(style, overlay.rng)
		scene := buildScene(resolved, overlay.rng)
		overlay.visible = true
		overlay.mu.Unlock()

		overlay.window.SetContent(overlay.compose(scene, MessageFor(kind)))
		overlay.window.SetFullScreen(true)
		overlay.window.Show()
		overlay.window.RequestFocus()
	})
}

// Visible reports whether the crash screen is up.
func (overlay *Window) Visible() bool {
	overlay.mu.Lock()
	defer overlay.mu.Unlock()
	return overlay.visible
}

func (overlay *Window) dismiss() {
	overlay.mu.Lock()
	if !overlay.visible {
		overlay.mu.Unlock()
		return
	}
	overlay.visible = false
	overlay.mu.Unlock()

	overlay.window.SetFullScreen(false)
	overlay.window.Hide()
}

func (overlay *Window) compose(scene []placement, message Message) fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(scene))
	for _, item := range scene {
		objects = append(objects, item.object)
	}
	background := container.New(&sceneLayout{placements: scene}, objects...)

	panel := container.NewCenter(container.NewStack(
		canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 170, A: 230}),
		container.NewPadded(container.NewVBox(
			crashText(message.Title, true),
			widget.NewSeparator(),
			crashText(message.Body, false),
			crashText(message.Footer, false),
		)),
	))

	return container.NewStack(background, panel, newDismissArea(overlay.dismiss))
}

func crashText(value string, heading bool) fyne.CanvasObject {
	label := widget.NewLabel(value)
	label.TextStyle = fyne.TextStyle{Monospace: true, Bold: heading}
	label.Alignment = fyne.TextAlignCenter
	if heading {
		label.SizeName = theme.SizeNameSubHeadingText
	}
	return label
}

// dismissArea swallows any tap on the overlay.
type dismissArea struct {
	widget.BaseWidget
	onTap func()
}

func newDismissArea(onTap func()) *dismissArea {
	area := &dismissArea{onTap: onTap}
	area.ExtendBaseWidget(area)
	return area
}

func (area *dismissArea) Tapped(*fyne.PointEvent) {
	if area.onTap != nil {
		area.onTap()
	}
}

func (area *dismissArea) TappedSecondary(*fyne.PointEvent) {
	area.Tapped(nil)
}

func (area *dismissArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
