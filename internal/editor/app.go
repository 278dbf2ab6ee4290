package editor

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/rastkit/raint"
	"github.com/rastkit/raint/export"
	"github.com/rastkit/raint/rai"
)

// Options configures a new editor App.
type Options struct {
	// Canvas is the initial canvas. When nil, a blank canvas of the
	// clamped Width and Height is created instead.
	Canvas *raint.Canvas

	Width      int
	Height     int
	Projection Projection
}

// App is the interactive terminal editor. It owns the live canvas, the
// undo history, and the current tool parameters, and drives everything
// from the screen's event stream.
type App struct {
	screen  tcell.Screen
	canvas  *raint.Canvas
	history *raint.History
	proj    Projection

	color     raint.Color
	thickness int

	// message is transient feedback shown in place of the status bar
	// until the next keypress.
	message string

	quit bool
}

// NewApp creates an editor on the given screen. The screen must
// already be initialized; the app draws to it but does not manage its
// lifecycle.
func NewApp(screen tcell.Screen, opts Options) *App {
	c := opts.Canvas
	if c == nil {
		c = raint.NewCanvas(clampSize(opts.Width), clampSize(opts.Height))
	}
	return &App{
		screen:    screen,
		canvas:    c,
		history:   raint.NewHistory(c),
		proj:      opts.Projection,
		color:     raint.Black,
		thickness: raint.MinThickness,
	}
}

// Run drives the editor until the user quits or the screen is
// finalized.
func (a *App) Run() error {
	raint.Logger().Info("editor started",
		"width", a.canvas.Width(), "height", a.canvas.Height())

	for !a.quit {
		a.draw(a.canvas, a.statusLine())

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			a.handleKey(ev)
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			return nil
		}
	}
	return nil
}

func (a *App) statusLine() string {
	if a.message != "" {
		return a.message
	}
	return fmt.Sprintf("H - Help | Color: RGB(%d, %d, %d) | Thickness: %d",
		a.color.R, a.color.G, a.color.B, a.thickness)
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	a.message = ""

	switch unicode.ToLower(ev.Rune()) {
	case 'q':
		a.quit = true
	case 'h':
		a.showHelp()
	case 'c':
		a.promptColor()
	case 's':
		a.pickShape()
	case 'l':
		a.runLineTool()
	case 'p':
		a.runPaintTool(false)
	case 'e':
		a.runPaintTool(true)
	case 't':
		a.promptThickness()
	case 'z':
		if prev, ok := a.history.Undo(); ok {
			a.canvas = prev
		}
	case 'y':
		if next, ok := a.history.Redo(); ok {
			a.canvas = next
		}
	case '[':
		a.promptSave("Export filename (without .rai): ", "Image exported to: %s")
	case ']':
		a.promptLoad()
	case '*':
		a.promptSave("Save to existing .rai file (path): ", "File saved: %s")
	}
}

// drawFrame stages the canvas view and the separator rule, returning
// the row for the status line below them.
func (a *App) drawFrame(view *raint.Canvas) int {
	a.screen.Clear()
	drawCanvas(a.screen, view, a.proj)

	row := a.proj.rows(view)
	width, _ := a.screen.Size()
	for x := 0; x < width; x++ {
		a.screen.SetContent(x, row, '─', nil, tcell.StyleDefault)
	}
	return row
}

func (a *App) draw(view *raint.Canvas, status string) {
	row := a.drawFrame(view)
	drawText(a.screen, 0, row+1, tcell.StyleDefault, status)
	a.screen.Show()
}

// promptLine runs a modal line editor in the status row. It returns
// the entered text trimmed of surrounding space, or reports false when
// the prompt is cancelled with Escape.
func (a *App) promptLine(label string) (string, bool) {
	defer a.screen.HideCursor()

	var input []rune
	for {
		a.drawPrompt(label, string(input))

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return strings.TrimSpace(string(input)), true
			case tcell.KeyEscape:
				return "", false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			return "", false
		}
	}
}

func (a *App) drawPrompt(label, input string) {
	row := a.drawFrame(a.canvas)
	col := drawText(a.screen, 0, row+1, tcell.StyleDefault.Bold(true), label)
	col = drawText(a.screen, col, row+1, tcell.StyleDefault, input)
	a.screen.ShowCursor(col, row+1)
	a.screen.Show()
}

var helpLines = []string{
	"",
	"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━",
	"                    HELP MENU",
	"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━",
	"",
	"H - Show this help menu",
	"C - Change brush color (RGB values or hex)",
	"S - Draw a shape (circle or square)",
	"L - Draw a line",
	"P - Paint mode (draw with mouse drag)",
	"E - Eraser mode (erase with mouse drag)",
	"T - Set brush thickness (1-10)",
	"Z - Undo last action",
	"Y - Redo last action",
	"[ - Export image as .rai, .png, or .pdf (supports paths and ~)",
	"] - Open and load a .rai or .png file (supports paths and ~)",
	"* - Save to existing .rai file (supports paths and ~)",
	"Q - Quit the application",
	"",
	"Press any key to exit help menu...",
}

// showHelp covers the screen with the key reference until any key is
// pressed.
func (a *App) showHelp() {
	for {
		a.screen.Clear()
		for i, line := range helpLines {
			drawText(a.screen, 1, i+1, tcell.StyleDefault, line)
		}
		a.screen.Show()

		switch a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			return
		}
	}
}

// pickShape asks which shape to draw and runs the shape tool. Any
// answer starting with "c" selects the circle; everything else draws
// the square.
func (a *App) pickShape() {
	input, ok := a.promptLine("Shape (c=circle/s=square): ")
	if !ok {
		return
	}
	kind := raint.ShapeRect
	if strings.HasPrefix(strings.ToLower(input), "c") {
		kind = raint.ShapeCircle
	}
	a.runShapeTool(kind)
}

func shapeName(kind raint.ShapeKind) string {
	if kind == raint.ShapeCircle {
		return "CIRCLE"
	}
	return "SQUARE"
}

func shapeStatus(kind raint.ShapeKind, started bool) string {
	if started {
		return fmt.Sprintf("[%s] Move to resize. Click to finalize. Press ESC to cancel.", shapeName(kind))
	}
	return fmt.Sprintf("[%s] Click and drag. Press ESC to cancel.", shapeName(kind))
}

func (a *App) runShapeTool(kind raint.ShapeKind) {
	raint.Logger().Debug("tool session started", "tool", shapeName(kind))
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	s := raint.NewShapeSession(a.canvas, a.history, kind, a.color)
	buttonDown := false

	for !s.Done() {
		view := s.Preview()
		if view == nil {
			view = a.canvas
		}
		a.draw(view, shapeStatus(kind, s.Started()))

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventMouse:
			s.Handle(a.pointerEvent(ev, &buttonDown))
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				s.Cancel()
			}
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			return
		}
	}
}

func (a *App) runLineTool() {
	raint.Logger().Debug("tool session started", "tool", "LINE")
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	s := raint.NewLineSession(a.canvas, a.history, a.color)
	buttonDown := false

	for !s.Done() {
		status := "[LINE] Click startpoint. Press ESC to cancel."
		if s.Started() {
			status = "[LINE] Click endpoint or press ESC to cancel."
		}
		a.draw(a.canvas, status)

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventMouse:
			s.Handle(a.pointerEvent(ev, &buttonDown))
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				s.Cancel()
			}
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			return
		}
	}
}

func (a *App) runPaintTool(erase bool) {
	var (
		s      *raint.PaintSession
		status string
		exit   rune
	)
	if erase {
		raint.Logger().Debug("tool session started", "tool", "ERASER")
		s = raint.NewEraseSession(a.canvas, a.history, a.thickness)
		status = "[ERASER MODE] Click/drag to erase. Press ESC or E to exit."
		exit = 'e'
	} else {
		raint.Logger().Debug("tool session started", "tool", "PAINT")
		s = raint.NewPaintSession(a.canvas, a.history, a.thickness, a.color)
		status = "[PAINT MODE] Click/drag to draw. Press ESC or P to exit."
		exit = 'p'
	}

	a.screen.EnableMouse()
	defer a.screen.DisableMouse()
	buttonDown := false

	for !s.Done() {
		a.draw(a.canvas, status)

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventMouse:
			s.Handle(a.pointerEvent(ev, &buttonDown))
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape ||
				(ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == exit) {
				s.Finish()
			}
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			return
		}
	}
}

// pointerKind derives the abstract pointer transition from the
// previous and current primary-button state.
func pointerKind(prev, cur bool) raint.PointerKind {
	switch {
	case cur && !prev:
		return raint.PointerDown
	case cur && prev:
		return raint.PointerDrag
	case prev:
		return raint.PointerUp
	default:
		return raint.PointerMove
	}
}

// pointerEvent translates a tcell mouse event into canvas coordinates,
// updating the tracked button state.
func (a *App) pointerEvent(ev *tcell.EventMouse, buttonDown *bool) raint.PointerEvent {
	x, y := ev.Position()
	cur := ev.Buttons()&tcell.Button1 != 0
	prev := *buttonDown
	*buttonDown = cur

	return raint.PointerEvent{
		Kind: pointerKind(prev, cur),
		Pos:  a.proj.pixelAt(x, y),
	}
}

func (a *App) promptColor() {
	input, ok := a.promptLine("RGB values (R G B): ")
	if !ok {
		return
	}
	col, valid := ParseColor(input)
	if !valid {
		raint.Logger().Warn("rejected color input", "input", input)
		return
	}
	a.color = col
}

func (a *App) promptThickness() {
	label := fmt.Sprintf("Brush thickness (%d-%d): ", raint.MinThickness, raint.MaxThickness)
	input, ok := a.promptLine(label)
	if !ok {
		return
	}
	t, valid := ParseThickness(input)
	if !valid {
		raint.Logger().Warn("rejected thickness input", "input", input)
		return
	}
	a.thickness = t
}

func (a *App) promptSave(label, successFormat string) {
	input, ok := a.promptLine(label)
	if !ok || input == "" {
		return
	}

	path, format := DetectFormat(ExpandPath(input))
	var err error
	switch format {
	case FormatPNG:
		err = export.WritePNG(path, a.canvas)
	case FormatPDF:
		err = export.WritePDF(path, a.canvas)
	default:
		err = rai.Save(path, a.canvas)
	}
	if err != nil {
		a.message = fmt.Sprintf("Error saving file: %v", err)
		return
	}
	a.message = fmt.Sprintf(successFormat, path)
}

func (a *App) promptLoad() {
	input, ok := a.promptLine("Open file (.rai or .png): ")
	if !ok || input == "" {
		return
	}

	loaded, err := LoadCanvas(ExpandPath(input))
	if err != nil {
		raint.Logger().Warn("load failed", "path", input, "error", err)
		a.message = fmt.Sprintf("Error loading file: %v", err)
		return
	}
	a.canvas = loaded
	a.history.Push(a.canvas)
	a.message = "Image loaded successfully!"
}

// LoadCanvas reads a canvas from path. Files ending in .png are
// decoded as images and rescaled when they fall outside the canvas
// size domain; everything else is read in the .rai format.
func LoadCanvas(path string) (*raint.Canvas, error) {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return rai.Load(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if clampSize(width) != width || clampSize(height) != height {
		return raint.FromImageScaled(img, clampSize(width), clampSize(height)), nil
	}
	return raint.FromImage(img), nil
}
