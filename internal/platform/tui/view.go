package tui

import (
	"fmt"
	"math"

	"github.com/tilemine/tilemine/internal/core"
	"github.com/tilemine/tilemine/internal/sim"
	"github.com/tilemine/tilemine/internal/theme"
)

// Terminal cells are roughly twice as tall as they are wide, so one tile
// maps to two columns and one row to keep blocks square on screen.
const (
	cellWorldW = sim.BlockSize / 2
	cellWorldH = sim.BlockSize
)

// camera holds the world position of the screen's top-left corner.
type camera struct {
	X float64
	Y float64
}

// cameraFor centers the view on the player.
func cameraFor(p *sim.Player, screenW, screenH int) camera {
	b := p.Bounds()
	return camera{
		X: b.X + p.Width/2 - float64(screenW)/2*cellWorldW,
		Y: b.Y + p.Height/2 - float64(screenH)/2*cellWorldH,
	}
}

// screenToTile maps a terminal cell to the world tile under its center.
func (c camera) screenToTile(sx, sy int) (int, int) {
	wx := c.X + (float64(sx)+0.5)*cellWorldW
	wy := c.Y + (float64(sy)+0.5)*cellWorldH
	return core.FloorDiv(wx, sim.BlockSize), core.FloorDiv(wy, sim.BlockSize)
}

// tileToScreen maps a world tile to the terminal cell of its left edge.
func (c camera) tileToScreen(tx, ty int) (int, int) {
	sx := int(math.Floor((float64(tx)*sim.BlockSize - c.X) / cellWorldW))
	sy := int(math.Floor((float64(ty)*sim.BlockSize - c.Y) / cellWorldH))
	return sx, sy
}

// Renderer draws one frame of the session into a screen buffer.
type Renderer struct {
	theme theme.Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(t theme.Theme) *Renderer {
	return &Renderer{theme: t}
}

// SetTheme switches the color scheme for subsequent frames.
func (r *Renderer) SetTheme(t theme.Theme) {
	r.theme = t
}

// Theme returns the active theme.
func (r *Renderer) Theme() theme.Theme {
	return r.theme
}

// Draw renders the world, player, crosshair, HUD, and optionally the help
// overlay. Reading tiles through the world generates any columns entering
// the view, so terrain appears as the camera approaches it.
func (r *Renderer) Draw(s *core.Screen, sess *sim.Session, cursorX, cursorY int, haveCursor, showHelp bool) {
	p := sess.Player()
	cam := cameraFor(p, s.Width(), s.Height())

	r.drawTerrain(s, sess, cam)
	r.drawPlayer(s, p, cam)
	if haveCursor {
		r.drawCrosshair(s, sess, cam, cursorX, cursorY)
	}
	r.drawHUD(s, sess)
	if showHelp {
		r.drawHelp(s)
	}
}

// helpLines are the key bindings shown on the help overlay.
var helpLines = []string{
	"a/d  walk        space  jump",
	"w/s  fly up/dn   space space  flight",
	"c    crouch      t      theme",
	"1-5 [ ]          pick block",
	"mouse L/R        place / mine",
	"?    close help  q      quit",
}

func (r *Renderer) drawHelp(s *core.Screen) {
	boxW := 0
	for _, line := range helpLines {
		if len(line) > boxW {
			boxW = len(line)
		}
	}
	boxW += 4
	boxH := len(helpLines) + 2
	box := core.NewRect((s.Width()-boxW)/2, (s.Height()-boxH)/2, boxW, boxH)

	s.FillRect(box, core.Cell{Rune: ' ', Bg: r.theme.HUDPanel})
	s.DrawBox(box, r.theme.HUDText)
	for i, line := range helpLines {
		s.DrawText(box.X+2, box.Y+1+i, line, r.theme.HUDText)
	}
	s.DrawTextCentered(box.Y, " controls ", r.theme.HUDText)
}

func (r *Renderer) drawTerrain(s *core.Screen, sess *sim.Session, cam camera) {
	w := sess.World()
	height := s.Height()
	if height <= 1 {
		height = 2
	}

	for y := 0; y < s.Height(); y++ {
		sky := r.theme.BackgroundTop.Blend(r.theme.BackgroundBottom, float64(y)/float64(height-1))
		for x := 0; x < s.Width(); x++ {
			tx, ty := cam.screenToTile(x, y)
			bg := sky
			if block := w.Get(tx, ty); block != nil {
				bg = block.Color
			}
			s.SetCell(x, y, core.Cell{Rune: ' ', Bg: bg})
		}
	}
}

func (r *Renderer) drawPlayer(s *core.Screen, p *sim.Player, cam camera) {
	b := p.Bounds()
	x0 := int(math.Floor((b.X - cam.X) / cellWorldW))
	x1 := int(math.Ceil((b.Right()-cam.X)/cellWorldW)) - 1
	y0 := int(math.Floor((b.Y - cam.Y) / cellWorldH))
	y1 := int(math.Ceil((b.Bottom()-cam.Y)/cellWorldH)) - 1

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetCell(x, y, core.Cell{Rune: ' ', Bg: r.theme.Player})
		}
	}
}

func (r *Renderer) drawCrosshair(s *core.Screen, sess *sim.Session, cam camera, tx, ty int) {
	px, py := sess.Player().Tile()
	color := r.theme.Crosshair
	if !sim.WithinBuildRadius(px, py, tx, ty, sess.BuildRadius()) {
		color = r.theme.CrosshairOutline
	}

	sx, sy := cam.tileToScreen(tx, ty)
	left := s.GetCell(sx, sy)
	left.Rune = '['
	left.Fg = color
	s.SetCell(sx, sy, left)

	right := s.GetCell(sx+1, sy)
	right.Rune = ']'
	right.Fg = color
	s.SetCell(sx+1, sy, right)
}

func (r *Renderer) drawHUD(s *core.Screen, sess *sim.Session) {
	p := sess.Player()
	tx, ty := p.Tile()

	status := fmt.Sprintf(" %s  (%d, %d)", r.theme.Name, tx, ty)
	if p.FlightMode {
		status += "  flying"
	} else if p.Crouching {
		status += "  crouching"
	}
	s.DrawText(0, 0, status, r.theme.HUDText)

	r.drawHotbar(s, sess)
}

// drawHotbar paints the inventory slots along the bottom edge: a digit,
// then a two-cell swatch of the block color. The selected slot is
// bracketed with the theme's glow color.
func (r *Renderer) drawHotbar(s *core.Screen, sess *sim.Session) {
	inv := sess.Inventory()
	y := s.Height() - 1
	x := 1

	for i, block := range inv.Slots() {
		selected := i == inv.SelectedIndex()

		open := s.GetCell(x, y)
		open.Fg = r.theme.SelectionGlow
		open.Rune = ' '
		if selected {
			open.Rune = '['
		}
		s.SetCell(x, y, open)
		x++

		s.SetCell(x, y, core.Cell{Rune: rune('1' + i), Fg: r.theme.HUDText, Bg: block.Color})
		x++
		s.SetCell(x, y, core.Cell{Rune: ' ', Bg: block.Color})
		x++

		closing := s.GetCell(x, y)
		closing.Fg = r.theme.SelectionGlow
		closing.Rune = ' '
		if selected {
			closing.Rune = ']'
		}
		s.SetCell(x, y, closing)
		x++
	}

	if selected := inv.Selected(); selected != nil {
		s.DrawText(x+1, y, selected.Name, r.theme.HUDText)
	}
}
