// Package viewer provides an interactive grid viewer for a scenario. The
// player steers a cursor over the map, moves the user along validated paths
// and collects entities; the event log and running statistics are shown in
// an overlay.
package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/CB2Moon/InhabitantHunter/entity"
	"github.com/CB2Moon/InhabitantHunter/grid"
	"github.com/CB2Moon/InhabitantHunter/scenario"
)

// hudHeight is the pixel height of the status strip below the map.
const hudHeight = 64

var terrainColors = map[grid.TileType]color.RGBA{
	grid.Land:     {R: 0x58, G: 0x9a, B: 0x46, A: 0xff},
	grid.Ocean:    {R: 0x2a, G: 0x62, B: 0xb8, A: 0xff},
	grid.Mountain: {R: 0x7a, G: 0x6f, B: 0x66, A: 0xff},
	grid.Sand:     {R: 0xd8, G: 0xc7, B: 0x7e, A: 0xff},
}

// Game is the ebiten front-end for one scenario.
type Game struct {
	s        *scenario.Scenario
	user     *entity.User
	tileSize int

	cursor   grid.Coordinate
	moves    map[grid.Coordinate]bool
	collects map[grid.Coordinate]bool
	status   string
	showLog  bool
}

// New creates a viewer for the scenario. The first user found on the grid
// becomes the controlled character; a scenario without a user can still be
// inspected but not played.
func New(s *scenario.Scenario, tileSize int) *Game {
	g := &Game{
		s:        s,
		tileSize: tileSize,
	}
	for _, e := range s.Entities() {
		if u, ok := e.(*entity.User); ok {
			g.user = u
			g.cursor = u.Coordinate()
			break
		}
	}
	g.refresh()
	return g
}

// Run opens a window sized to the scenario and runs the viewer until the
// window is closed.
func Run(s *scenario.Scenario, tileSize int, title string) error {
	g := New(s, tileSize)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", title, s.Name()))
	return ebiten.RunGame(g)
}

// refresh recomputes the highlighted move and collection targets for the
// controlled user.
func (g *Game) refresh() {
	g.moves = make(map[grid.Coordinate]bool)
	g.collects = make(map[grid.Coordinate]bool)
	if g.user == nil {
		return
	}
	for _, c := range g.s.PossibleMoves(g.user) {
		g.moves[c] = true
	}
	for _, c := range g.s.PossibleCollections(g.user) {
		g.collects[c] = true
	}
}

func (g *Game) Update() error {
	g.handleCursor()

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showLog = !g.showLog
	}
	if g.user == nil {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.tryMove()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.tryCollect()
	}
	return nil
}

// handleCursor moves the selection cursor with the arrow keys, clamped to
// the grid.
func (g *Game) handleCursor() {
	c := g.cursor
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		c = c.Translate(-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		c = c.Translate(1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		c = c.Translate(0, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		c = c.Translate(0, 1)
	}
	if g.s.Grid().InBounds(c) {
		g.cursor = c
	}
}

func (g *Game) tryMove() {
	ok, err := g.s.CanMove(g.user, g.cursor)
	if err != nil || !ok {
		g.status = fmt.Sprintf("Cannot move to %s", g.cursor)
		return
	}
	g.s.Move(g.user, g.cursor)
	g.status = fmt.Sprintf("Moved to %s", g.cursor)
	g.refresh()
}

func (g *Game) tryCollect() {
	points, err := g.s.Collect(g.user, g.cursor)
	if err != nil {
		g.status = fmt.Sprintf("Nothing to collect at %s", g.cursor)
		return
	}
	if points == 0 {
		g.status = fmt.Sprintf("%s cannot be collected", g.cursor)
		return
	}
	g.status = fmt.Sprintf("Collected %d points at %s", points, g.cursor)
	g.refresh()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawTiles(screen)
	g.drawHighlights(screen)
	g.drawEntities(screen)
	g.drawCursor(screen)
	g.drawHUD(screen)
	if g.showLog {
		g.drawLog(screen)
	}
}

func (g *Game) drawTiles(screen *ebiten.Image) {
	size := float32(g.tileSize)
	tiles := g.s.Grid().Tiles()
	for i := range tiles {
		c := g.s.Grid().CoordinateAt(i)
		vector.DrawFilledRect(screen,
			float32(c.X)*size, float32(c.Y)*size,
			size-1, size-1,
			terrainColors[tiles[i].Terrain()], false)
	}
}

func (g *Game) drawHighlights(screen *ebiten.Image) {
	size := float32(g.tileSize)
	for c := range g.moves {
		vector.DrawFilledRect(screen,
			float32(c.X)*size, float32(c.Y)*size,
			size-1, size-1,
			color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}, false)
	}
	for c := range g.collects {
		vector.DrawFilledRect(screen,
			float32(c.X)*size, float32(c.Y)*size,
			size-1, size-1,
			color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0x60}, false)
	}
}

func (g *Game) drawEntities(screen *ebiten.Image) {
	size := float32(g.tileSize)
	for _, e := range g.s.Entities() {
		c := e.Coordinate()
		cx := float32(c.X)*size + size/2
		cy := float32(c.Y)*size + size/2
		radius := size/6 + float32(e.Size())*size/16

		var fill color.RGBA
		switch e.(type) {
		case *entity.User:
			fill = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
		case *entity.Fauna:
			fill = color.RGBA{R: 0xb0, G: 0x41, B: 0x2e, A: 0xff}
		default:
			fill = color.RGBA{R: 0x1e, G: 0x5e, B: 0x2e, A: 0xff}
		}
		vector.DrawFilledCircle(screen, cx, cy, radius, fill, true)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	size := float32(g.tileSize)
	x := float32(g.cursor.X) * size
	y := float32(g.cursor.Y) * size
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	vector.StrokeRect(screen, x+1, y+1, size-3, size-3, 2, white, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	y := g.s.Grid().Height() * g.tileSize
	log := g.s.Log()

	line1 := fmt.Sprintf("%s  seed %d  cursor %s", g.s.Name(), g.s.Seed(), g.cursor)
	line2 := fmt.Sprintf("collected %d  points %d  tiles %d",
		log.EntitiesCollected(), log.PointsEarned(), log.TilesTraversed())
	line3 := "arrows: cursor  enter: move  c: collect  tab: log"
	if g.user == nil {
		line3 = "no user in this scenario (view only)"
	}
	if g.status != "" {
		line3 = g.status
	}

	ebitenutil.DebugPrintAt(screen, line1, 4, y+4)
	ebitenutil.DebugPrintAt(screen, line2, 4, y+20)
	ebitenutil.DebugPrintAt(screen, line3, 4, y+36)
}

// drawLog overlays the most recent event log entries on the map.
func (g *Game) drawLog(screen *ebiten.Image) {
	events := g.s.Log().Events()
	const maxShown = 4
	start := 0
	if len(events) > maxShown {
		start = len(events) - maxShown
	}
	y := 4
	for _, e := range events[start:] {
		ebitenutil.DebugPrintAt(screen, e.String(), 4, y)
		y += 64
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.s.Grid().Width() * g.tileSize,
		g.s.Grid().Height()*g.tileSize + hudHeight
}
