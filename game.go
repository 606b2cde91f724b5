package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/component"
	"github.com/milk9111/delve/obj"
	"github.com/milk9111/delve/prefabs"
	"github.com/milk9111/delve/system"
	"golang.design/x/clipboard"
)

type controlMode int

const (
	modeMove controlMode = iota
	modeBuild
)

func (m controlMode) String() string {
	if m == modeBuild {
		return "build"
	}
	return "move"
}

type Game struct {
	frames int
	debug  bool
	// clipboard is false when the system clipboard could not be opened.
	clipboard bool

	world   *system.World
	brain   *system.ScriptBrain
	watcher *prefabs.Watcher

	input  *Input
	camera *Camera

	mode       controlMode
	blueprint  *obj.Blueprint
	selected   prefabs.StructureSpec
	menu       *ebitenui.UI
	menuOpen   bool
	lastAction obj.PlayerAction
	status     string
}

// NewGame loads the prefabs and generates a cave. A zero seed falls back to
// world.yaml and then to the clock.
func NewGame(seed uint64, debug bool) (*Game, error) {
	specs, err := prefabs.LoadAll()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug:  debug,
		input:  NewInput(),
		camera: NewCamera(common.BaseWidth, common.BaseHeight, 1),
	}
	if len(specs.Structures.Structures) > 0 {
		g.selected = specs.Structures.Structures[0]
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard: %v; seeds are shown instead of copied", err)
	} else {
		g.clipboard = true
	}

	if brain, err := system.NewScriptBrain(specs.Kobold.Brain); err != nil {
		log.Printf("kobold brain: %v; falling back to greedy", err)
	} else {
		g.brain = brain
	}

	if err := g.newWorld(specs, seed); err != nil {
		return nil, err
	}

	if w, err := prefabs.NewWatcher(prefabs.Dir); err != nil {
		log.Printf("prefabs: hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}

	g.menu = NewBlueprintMenu(g, specs.Structures.Structures)
	return g, nil
}

func (g *Game) newWorld(specs *prefabs.Specs, seed uint64) error {
	if seed == 0 {
		seed = specs.World.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var brain obj.Brain
	if g.brain != nil {
		brain = g.brain
	}
	world, err := system.NewWorld(specs, seed, brain)
	if err != nil {
		return err
	}
	log.Printf("delve: seed %d, %d kobolds", seed, len(world.Kobolds))

	g.world = world
	g.mode = modeMove
	g.blueprint = nil
	g.status = ""

	// include the bedrock ring
	n := specs.World.ChunkSize
	g.camera.SetWorldBounds(cp.BB{
		L: -common.TileSize,
		B: -common.TileSize,
		R: float64(n+1) * common.TileSize,
		T: float64(n+1) * common.TileSize,
	})
	center := common.TileCenter(world.Player.Pos)
	g.camera.SnapTo(center.X, center.Y)
	return nil
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// copySeed puts the current seed on the clipboard so the cave can be
// replayed with -seed or cavepath.
func (g *Game) copySeed() {
	seed := strconv.FormatUint(g.world.Seed, 10)
	if !g.clipboard {
		g.status = "seed " + seed
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(seed))
	g.status = fmt.Sprintf("seed %s copied", seed)
}

func (g *Game) selectStructure(spec prefabs.StructureSpec) {
	g.selected = spec
	if g.blueprint != nil {
		g.blueprint.Select(spec, g.world.Chunk)
	}
}

func (g *Game) Update() error {
	g.frames++
	g.reloadPrefabs()
	g.input.Update()

	if g.input.ToggleDebug {
		g.debug = !g.debug
	}
	if g.input.CopySeed {
		g.copySeed()
	}

	switch {
	case g.menuOpen:
		g.menu.Update()
		if g.input.Cancel || g.input.Menu {
			g.menuOpen = false
		}
	case g.world.GameOver():
		if g.input.Restart {
			if err := g.newWorld(g.world.Specs, 0); err != nil {
				return fmt.Errorf("restart: %w", err)
			}
		}
	case g.mode == modeBuild:
		g.updateBuild()
	default:
		g.updateMove()
	}

	center := common.TileCenter(g.world.Player.Pos)
	g.camera.Update(center.X, center.Y)
	return nil
}

func (g *Game) updateMove() {
	if g.input.Build {
		g.mode = modeBuild
		g.blueprint = obj.NewBlueprint(g.selected, g.world.Player.Pos.Add(obj.BlueprintOffset), g.world.Chunk)
		return
	}
	if !g.input.Moved {
		return
	}
	g.lastAction = g.world.Act(g.input.Direction)
	g.status = g.describeTurn()
}

func (g *Game) updateBuild() {
	b := g.blueprint
	chunk := g.world.Chunk
	switch {
	case g.input.Cancel:
		g.mode = modeMove
		g.blueprint = nil
	case g.input.Menu:
		g.menuOpen = true
	case g.input.RotateLeft:
		b.RotateLeft(chunk)
	case g.input.RotateRight:
		b.RotateRight(chunk)
	case g.input.Place:
		if s, err := b.Place(chunk); err != nil {
			g.status = err.Error()
		} else {
			g.status = fmt.Sprintf("built %s", s.Name)
		}
	case g.input.Moved:
		b.Move(g.input.Direction, chunk)
	}
}

func (g *Game) describeTurn() string {
	msg := fmt.Sprintf("turn %d: %s", g.world.Turn, g.lastAction)
	for _, evt := range g.world.Combat.Recent {
		switch evt.Type {
		case component.EventDamageApplied:
			msg += fmt.Sprintf(", %d hit %d for %.0f", evt.AttackerID, evt.TargetID, evt.Damage)
		case component.EventDeath:
			msg += fmt.Sprintf(", %d died", evt.TargetID)
		}
	}
	return msg
}

// reloadPrefabs applies spec and script edits picked up by the watcher.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefabs: watch: %v", err)
	default:
	}

	for _, c := range g.watcher.Drain() {
		if err := g.applyChange(c); err != nil {
			log.Printf("prefabs: reload %s: %v", c.Name, err)
			continue
		}
		log.Printf("prefabs: reloaded %s", c.Name)
	}
}

func (g *Game) applyChange(c prefabs.Change) error {
	switch {
	case c.Script:
		if g.brain == nil {
			return fmt.Errorf("no script brain loaded")
		}
		return g.brain.Reload()
	case c.Name == prefabs.KoboldFile:
		spec, err := prefabs.LoadSpec[prefabs.KoboldSpec](c.Name)
		if err != nil {
			return err
		}
		g.world.ApplyKoboldSpec(spec)
	case c.Name == prefabs.PlayerFile:
		spec, err := prefabs.LoadSpec[prefabs.PlayerSpec](c.Name)
		if err != nil {
			return err
		}
		g.world.ApplyPlayerSpec(spec)
	case c.Name == prefabs.StructuresFile:
		spec, err := prefabs.LoadSpec[prefabs.StructuresSpec](c.Name)
		if err != nil {
			return err
		}
		g.world.Specs.Structures = spec
		if s, ok := spec.Find(g.selected.Kind); ok {
			g.selectStructure(s)
		} else {
			g.selectStructure(spec.Structures[0])
		}
		g.menu = NewBlueprintMenu(g, spec.Structures)
	case c.Name == prefabs.WorldFile:
		spec, err := prefabs.LoadSpec[prefabs.WorldSpec](c.Name)
		if err != nil {
			return err
		}
		// takes effect on the next restart
		g.world.Specs.World = spec
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.camera.Render(screen, g.drawWorld)
	g.drawHUD(screen)
	if g.menuOpen {
		g.menu.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
