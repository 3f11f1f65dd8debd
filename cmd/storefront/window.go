package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"storefront/assets"
	"storefront/internal/app"
	"storefront/internal/auth"
	"storefront/internal/commands"
	"storefront/internal/debug"
	"storefront/internal/fonts"
	"storefront/internal/graphics"
	"storefront/internal/primitives"
	"storefront/internal/scene"
	"storefront/internal/schedule"
	"storefront/internal/terminal"
	"storefront/internal/ui"
	"storefront/internal/views"
)

// fontSize is the size glyphs are rasterized at; text is scaled from it.
const fontSize = 32

// runWindow builds the storefront and runs it until the window closes.
func runWindow() error {
	log := lg.Zap()
	store, err := loadCatalog()
	if err != nil {
		return err
	}
	log.Info("catalog loaded", zap.Int("products", store.Len()), zap.String("seed", cfg.Catalog.SeedPath))

	sched := schedule.New(nil)
	m := app.New(store, auth.DefaultCredentials(cfg.Auth.BcryptCost), sched, log, app.Options{
		RedirectDelay: cfg.Checkout.RedirectDelay,
	})

	reg := commands.NewRegistry()
	term := terminal.New(lg, reg)
	m.RegisterCommands(reg, term.Print)

	dbg := debug.New()
	dbg.ShowFPS = cfg.Debug.ShowFPS
	dbg.ShowStats = cfg.Debug.ShowStats

	engine := ui.New()
	loadStylesheet := func() error {
		if err := engine.LoadCSS(cfg.UI.Stylesheet); err != nil {
			if engine.HasStylesheet() {
				return err
			}
			sheet, perr := ui.ParseCSS(assets.Stylesheet)
			if perr != nil {
				return perr
			}
			engine.SetStylesheet(sheet)
			log.Warn("using built-in stylesheet", zap.String("path", cfg.UI.Stylesheet), zap.Error(err))
		}
		return nil
	}
	if err := loadStylesheet(); err != nil {
		return err
	}

	var watcher *ui.Watcher
	if cfg.UI.Watch {
		if watcher, err = ui.Watch(cfg.UI.Stylesheet, log); err != nil {
			log.Warn("stylesheet watch disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	prims := primitives.NewRegistry()
	screen := views.New(views.Deps{
		Manager:   m,
		Scheduler: sched,
		Factory:   scene.Factory(prims, cfg.Preview),
		Engine:    engine,
		Terminal:  term,
		Debug:     dbg,
		Log:       log,
		Preview:   cfg.Preview,
	})
	dbg.StatsFunc = func() debug.Stats {
		s := screen.Stats()
		s.Meshes = prims.Meshes()
		return s
	}

	reg.Simple("fps", "", "toggle the FPS overlay", func(args []string) error {
		dbg.ShowFPS = !dbg.ShowFPS
		return nil
	})
	reg.Simple("stats", "", "toggle the preview and memory overlay", func(args []string) error {
		dbg.ShowStats = !dbg.ShowStats
		return nil
	})
	reg.Simple("reload", "", "reload the stylesheet from disk", func(args []string) error {
		if err := engine.LoadCSS(cfg.UI.Stylesheet); err != nil {
			return err
		}
		term.Print("reloaded " + cfg.UI.Stylesheet)
		return nil
	})

	var font rl.Font
	graphics.Run(cfg.Window, graphics.Hooks{
		Init: func() {
			path, err := fonts.Resolve(cfg.UI.Font)
			if err != nil {
				log.Warn("font not found, using default", zap.String("font", cfg.UI.Font), zap.Error(err))
				return
			}
			if path == "" {
				return
			}
			font = rl.LoadFontEx(path, fontSize, nil)
			if font.Texture.ID == 0 {
				log.Warn("font failed to load", zap.String("path", path))
				return
			}
			rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
			screen.SetFont(font)
			term.SetFont(font)
			dbg.SetFont(font)
			log.Info("font loaded", zap.String("path", path))
		},
		Update: func() {
			if watcher != nil && watcher.Poll() {
				if err := engine.LoadCSS(cfg.UI.Stylesheet); err != nil {
					term.Print(fmt.Sprintf("stylesheet: %v", err))
				} else {
					log.Info("stylesheet reloaded", zap.String("path", cfg.UI.Stylesheet))
				}
			}
			screen.Update()
		},
		Draw: screen.Draw,
		Close: func() {
			screen.Close()
			prims.Unload()
			if font.Texture.ID != 0 {
				rl.UnloadFont(font)
			}
			log.Info("window closed")
		},
	})
	return nil
}
