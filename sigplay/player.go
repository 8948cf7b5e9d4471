package sigplay

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/reusee/siglab/cmds"
	"github.com/reusee/siglab/debugs"
	"github.com/reusee/siglab/logs"
	"github.com/reusee/siglab/sig"
	"github.com/reusee/siglab/sigconfigs"
	"github.com/reusee/siglab/siglang"
	"github.com/reusee/siglab/syncs"
)

var (
	ticksFlag = cmds.Var[int]("-ticks")
	saveFlag  = cmds.Var[string]("-save")
	tapFlag   = cmds.Switch("-tap")
)

// Player owns the running graph. Script reloads and ticks go through
// the same semaphore, so a recompile never lands mid-tick.
type Player struct {
	logger      logs.Logger
	inputSource InputSource
	tap         debugs.Tap

	tickRate     float64
	seed         int64
	screenWidth  int
	screenHeight int

	sem   syncs.Semaphore
	graph *sig.Graph
	tick  int64
}

func (Module) Player(
	logger logs.Logger,
	inputSource InputSource,
	tap debugs.Tap,
	tickRate sigconfigs.TickRate,
	seed sigconfigs.Seed,
	screenWidth sigconfigs.ScreenWidth,
	screenHeight sigconfigs.ScreenHeight,
) *Player {
	p := &Player{
		logger:       logger,
		inputSource:  inputSource,
		tap:          tap,
		tickRate:     float64(tickRate),
		seed:         int64(seed),
		screenWidth:  int(screenWidth),
		screenHeight: int(screenHeight),
		sem:          syncs.NewSemaphore(1),
	}
	p.graph = sig.NewGraph(p.newRandom())
	return p
}

func (p *Player) newRandom() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(p.seed), 0))
}

func (p *Player) Graph() *sig.Graph {
	return p.graph
}

func (p *Player) Tick() int64 {
	return p.tick
}

// LoadScript compiles path and swaps the running graph. On compile
// error the old graph keeps running.
func (p *Player) LoadScript(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	graph, err := siglang.Compile(
		filepath.Base(path),
		string(content),
		siglang.Options{
			Random:       p.newRandom(),
			ScreenWidth:  p.screenWidth,
			ScreenHeight: p.screenHeight,
		},
	)
	if err != nil {
		return err
	}

	p.sem.Acquire()
	defer p.sem.Release()
	p.graph = graph
	p.logger.Info("script loaded",
		"path", path,
		"nodes", len(graph.Nodes()),
	)
	return nil
}

// LoadGraph reads a saved graph file and swaps it in.
func (p *Player) LoadGraph(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	graph, err := sig.Load(f, p.newRandom())
	if err != nil {
		return err
	}

	p.sem.Acquire()
	defer p.sem.Release()
	p.graph = graph
	p.logger.Info("graph loaded",
		"path", path,
		"nodes", len(graph.Nodes()),
	)
	return nil
}

func (p *Player) SaveGraph(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	p.sem.Acquire()
	defer p.sem.Release()
	return p.graph.Save(f)
}

// Step runs one evaluation pass and reports fired beeps.
func (p *Player) Step(ctx context.Context) {
	p.sem.Acquire()
	defer p.sem.Release()

	p.tick++
	p.graph.Tick(sig.Signal(1/p.tickRate), p.inputSource())

	for _, n := range p.graph.Nodes() {
		if n.Kind == sig.KindBeep && n.ShouldPlay {
			p.logger.InfoContext(logs.WithTick(ctx, p.tick), "beep",
				"pitch", n.Pitch,
				"volume", n.Volume,
			)
		}
	}
}

// Run plays until ctx is done or the -ticks limit is hit, recompiling
// whenever the script changes on disk. Empty scriptPath plays whatever
// graph is already loaded.
func (p *Player) Run(ctx context.Context, scriptPath string) error {
	if scriptPath != "" {
		if err := p.LoadScript(scriptPath); err != nil {
			return err
		}
	}

	if *saveFlag != "" {
		defer func() {
			if err := p.SaveGraph(*saveFlag); err != nil {
				p.logger.Error("save graph",
					"path", *saveFlag,
					"error", err,
				)
			}
		}()
	}

	if *tapFlag {
		defer p.tap(ctx, "player", map[string]any{
			"nodes": p.graph.Nodes(),
			"tick":  p.tick,
		})
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if scriptPath != "" {
		// watch the directory: editors replace files on save
		if err := watcher.Add(filepath.Dir(scriptPath)); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(time.Duration(float64(time.Second) / p.tickRate))
	defer ticker.Stop()

	maxTicks := int64(*ticksFlag)
	for {
		select {

		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Name != scriptPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := p.LoadScript(scriptPath); err != nil {
				p.logger.Warn("recompile failed, keeping old graph",
					"error", err,
				)
			}

		case err := <-watcher.Errors:
			p.logger.Warn("watch error",
				"error", err,
			)

		case <-ticker.C:
			p.Step(ctx)
			if maxTicks > 0 && p.tick >= maxTicks {
				return nil
			}

		}
	}
}
