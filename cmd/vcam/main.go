// vcam renders a Phong-lit scene into a terminal using a
// CPU-only software rasterizer: no GPU, no OpenGL/Vulkan bindings, just
// matrix math and a framebuffer blitted through half-block characters.
//
// Controls:
//
//	W/S/A/D/Q/E  - orbit the camera (pitch/yaw/roll impulses)
//	Shift+Left/Right - move the light along its local X axis
//	Shift        - double light movement speed
//	+/-          - zoom the camera in/out
//	R            - reset camera zoom (orbit rotation is kept)
//	?            - toggle the HUD overlay
//	G            - toggle the debug axes/bounds overlay
//	Esc, Ctrl+C  - quit
//
// Pass -screenshot <path> to render one frame straight to a PNG and exit,
// with no terminal required.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/taigrr/vcam/internal/config"
	"github.com/taigrr/vcam/internal/scene"
	"github.com/taigrr/vcam/internal/terminalhost"
	"github.com/taigrr/vcam/internal/vcamlog"
	"github.com/taigrr/vcam/pkg/math3d"
	"github.com/taigrr/vcam/pkg/render"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file (defaults used if absent)")
	screenshot = flag.String("screenshot", "", "render one frame to this PNG path and exit, without opening a terminal")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vcam - terminal software rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vcam [options] [model.gltf|model.glb]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var modelPath string
	if flag.NArg() > 0 {
		modelPath = flag.Arg(0)
	}

	var err error
	if *screenshot != "" {
		err = runScreenshot(modelPath, *screenshot)
	} else {
		err = run(modelPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "vcam: %v\n", err)
		os.Exit(1)
	}
}

// runScreenshot renders a single frame of the configured scene straight to
// a PNG file, with no terminal host and no input loop. Useful for smoke
// testing a model or config file headlessly (CI, bug reports) without a
// tty. The capture is bordered so it's visually obvious it's a debug dump
// rather than a trimmed final frame.
func runScreenshot(modelPath, outPath string) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	background := render.RGB(uint8(cfg.Graphics.Background[0]), uint8(cfg.Graphics.Background[1]), uint8(cfg.Graphics.Background[2]))
	rs := render.NewRenderSystem(background)

	model, err := loadModel(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	width, height := cfg.Graphics.Width, cfg.Graphics.Height
	if width <= 0 {
		width = 320
	}
	if height <= 0 {
		height = 180
	}

	cameraEntity := scene.NewEntity()
	cameraEntity.Position = math3d.V3(cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2])
	camUpdater := scene.NewCameraUpdater(rs)
	camUpdater.VFOV = cfg.Camera.VFOV
	cameraEntity.Updaters = []scene.Updater{camUpdater}

	lightEntity := scene.NewEntity()
	lightEntity.Position = math3d.V3(cfg.Light.Position[0], cfg.Light.Position[1], cfg.Light.Position[2])
	lightUpdater := scene.NewLightUpdater(rs)
	lightUpdater.Ambient = math3d.V3(cfg.Light.Ambient[0], cfg.Light.Ambient[1], cfg.Light.Ambient[2])
	lightUpdater.Diffuse = math3d.V3(cfg.Light.Diffuse[0], cfg.Light.Diffuse[1], cfg.Light.Diffuse[2])
	lightUpdater.Specular = math3d.V3(cfg.Light.Specular[0], cfg.Light.Specular[1], cfg.Light.Specular[2])
	lightEntity.Updaters = []scene.Updater{lightUpdater}

	modelEntity := scene.NewEntity()
	modelEntity.Updaters = []scene.Updater{scene.NewRenderUpdater(rs, model)}

	sc := &scene.Scene{Entities: []*scene.Entity{cameraEntity, lightEntity, modelEntity}}
	sc.Update(0)

	fb, err := rs.RenderFrame(width, height)
	if err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	fb.DrawRectOutline(0, 0, width, height, render.RGB(255, 0, 255))

	if err := fb.SavePNG(outPath); err != nil {
		return fmt.Errorf("save screenshot: %w", err)
	}
	return nil
}

func run(modelPath string) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := vcamlog.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer vcamlog.Sync()

	background := render.RGB(uint8(cfg.Graphics.Background[0]), uint8(cfg.Graphics.Background[1]), uint8(cfg.Graphics.Background[2]))
	rs := render.NewRenderSystem(background)

	model, err := loadModel(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	host, err := terminalhost.Open()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer host.Close()

	targetFPS := cfg.Graphics.TargetFPS
	if targetFPS <= 0 {
		targetFPS = 60
	}

	cameraEntity := scene.NewEntity()
	cameraEntity.Position = math3d.V3(cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2])
	orbit := scene.NewOrbitUpdater(targetFPS)
	camUpdater := scene.NewCameraUpdater(rs)
	camUpdater.VFOV = cfg.Camera.VFOV
	cameraEntity.Updaters = []scene.Updater{orbit, camUpdater}

	lightEntity := scene.NewEntity()
	lightEntity.Position = math3d.V3(cfg.Light.Position[0], cfg.Light.Position[1], cfg.Light.Position[2])
	lightUpdater := scene.NewLightUpdater(rs)
	lightUpdater.Ambient = math3d.V3(cfg.Light.Ambient[0], cfg.Light.Ambient[1], cfg.Light.Ambient[2])
	lightUpdater.Diffuse = math3d.V3(cfg.Light.Diffuse[0], cfg.Light.Diffuse[1], cfg.Light.Diffuse[2])
	lightUpdater.Specular = math3d.V3(cfg.Light.Specular[0], cfg.Light.Specular[1], cfg.Light.Specular[2])
	lightEntity.Updaters = []scene.Updater{lightUpdater}

	modelEntity := scene.NewEntity()
	modelEntity.Updaters = []scene.Updater{scene.NewRenderUpdater(rs, model)}

	sc := &scene.Scene{Entities: []*scene.Entity{cameraEntity, lightEntity, modelEntity}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	in := newInputState()
	hud := terminalhost.NewHUD()

	go func() {
		for ev := range host.Events() {
			if in.handleEvent(ev, host, cancel) {
				return
			}
		}
	}()

	targetDuration := time.Second / time.Duration(targetFPS)
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame)
		lastFrame = now
		if dt > 100*time.Millisecond {
			dt = 100 * time.Millisecond
		}

		in.applyTo(orbit, lightUpdater, cameraEntity)
		sc.Update(dt)

		fbWidth, fbHeight := host.FramebufferSize()
		if cfg.Graphics.Width > 0 {
			fbWidth = cfg.Graphics.Width
		}
		if cfg.Graphics.Height > 0 {
			fbHeight = cfg.Graphics.Height
		}
		fb, err := rs.RenderFrame(fbWidth, fbHeight)
		if err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		if in.axes.on {
			wf := render.NewWireframe(render.Camera{
				Position: cameraEntity.Position,
				Rotation: cameraEntity.Rotation,
				VFOV:     camUpdater.VFOV,
			}, fb)
			wf.DrawAxes(2)
			wf.DrawAABB(model.Mesh.Bounds().Transform(modelEntity.Transform()), render.RGB(255, 200, 0))
		}

		if err := host.Present(fb); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		hud.Visible = in.hud.on
		hud.Tick()
		hud.Render(host.Width, host.Height, 1)

		if elapsed := time.Since(now); elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

func loadModel(path string) (*render.Model, error) {
	if path == "" {
		return render.NewCubeModel(1), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		mesh, material, err := scene.LoadGLTF(path)
		if err != nil {
			return nil, err
		}
		return render.NewModel(mesh, material), nil
	default:
		return nil, fmt.Errorf("unsupported model format: %s (use .gltf or .glb)", path)
	}
}
