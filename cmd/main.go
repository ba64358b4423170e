package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
	"github.com/royalcat/geostash/board"
	"github.com/royalcat/geostash/game"
	"github.com/royalcat/geostash/geomodel"
	"github.com/royalcat/geostash/internal/telemetry"
	"github.com/royalcat/geostash/server"
	"github.com/royalcat/geostash/stashsaver"
	"golang.org/x/exp/mmap"

	_ "net/http/pprof"

	"github.com/urfave/cli/v3"

	_ "github.com/KimMachineGun/automemlimit"
	_ "go.uber.org/automaxprocs"
)

func main() {
	app := &cli.App{
		Name:        "geostash",
		Description: "Location-keyed coin stash game with procedural population and snapshot persistence",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "serve the geostash api",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "state-dir",
						Aliases: []string{"d"},
						Value:   "geostash-state",
					},
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
					},
					&cli.Float64Flag{
						Name:  "spawn-probability",
						Value: 0.1,
					},
					&cli.IntFlag{
						Name:    "radius",
						Aliases: []string{"r"},
						Value:   8,
					},
					&cli.Float64Flag{
						Name:  "tile-width",
						Value: board.DefaultTileWidth,
					},
					&cli.StringFlag{
						Name:        "telemetry.endpoint",
						DefaultText: "",
					},
					&cli.StringFlag{
						Name:        "pprof.listen",
						DefaultText: "",
					},
				},
				Action: serve,
			},
			{
				Name:    "simulate",
				Aliases: []string{"s"},
				Usage:   "run headless player bots over the world",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "games",
						Aliases: []string{"g"},
						Value:   1,
					},
					&cli.IntFlag{
						Name:    "moves",
						Aliases: []string{"m"},
						Value:   1000,
					},
					&cli.IntFlag{
						Name:        "threads",
						Aliases:     []string{"t"},
						DefaultText: "max",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Value: 1,
					},
					&cli.Float64Flag{
						Name:  "lat",
						Value: 36.9895,
					},
					&cli.Float64Flag{
						Name:  "lon",
						Value: -122.0628,
					},
					&cli.Float64Flag{
						Name:  "spawn-probability",
						Value: 0.1,
					},
					&cli.IntFlag{
						Name:    "radius",
						Aliases: []string{"r"},
						Value:   8,
					},
					&cli.StringFlag{
						Name:        "stats",
						Usage:       "write a resource usage report to this file",
						DefaultText: "",
					},
				},
				Action: simulate,
			},
			{
				Name:  "inspect",
				Usage: "print a summary of a saved stash archive",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:      "archive",
						Aliases:   []string{"a"},
						Required:  true,
						TakesFile: true,
					},
				},
				Action: inspect,
			},
			{
				Name:  "reset",
				Usage: "drop all saved state",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "state-dir",
						Aliases: []string{"d"},
						Value:   "geostash-state",
					},
				},
				Action: reset,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(ctx *cli.Context) error {
	tele, err := telemetry.Setup(ctx.Context, "geostash", ctx.String("telemetry.endpoint"))
	if err != nil {
		return fmt.Errorf("error initializing telemetry: %w", err)
	}
	if tele != nil {
		defer tele.Shutdown(ctx.Context)
	}

	if pprofListen := ctx.String("pprof.listen"); pprofListen != "" {
		go func() {
			slog.Info("Starting pprof server")
			err := http.ListenAndServe(pprofListen, nil)
			if err != nil {
				slog.Error("Error starting pprof server", "error", err)
			}
		}()
	}

	storage, err := game.NewDirStorage(ctx.String("state-dir"))
	if err != nil {
		return err
	}

	g := game.New(
		game.WithStorage(storage),
		game.WithSpawnProbability(ctx.Float64("spawn-probability")),
		game.WithVisibilityRadius(ctx.Int("radius")),
		game.WithTileWidth(ctx.Float64("tile-width")),
	)

	slog.Info("Loading saved state")
	if err := g.Load(); err != nil {
		return fmt.Errorf("error loading saved state: %w", err)
	}

	return server.Run(ctx.Context, ctx.String("listen"), g)
}

func inspect(ctx *cli.Context) error {
	file, err := mmap.Open(ctx.String("archive"))
	if err != nil {
		return fmt.Errorf("can`t open archive file: %s", err.Error())
	}
	defer file.Close()

	dec, err := zstd.NewReader(io.NewSectionReader(file, 0, int64(file.Len())))
	if err != nil {
		return fmt.Errorf("can`t create zstd reader: %s", err.Error())
	}
	defer dec.Close()

	store, err := stashsaver.LoadFromReader(dec, slog.Default())
	if err != nil {
		return err
	}

	coins := 0
	store.Ascend(func(c geomodel.Cell, snapshot string) bool {
		st, err := stashsaver.Restore(snapshot)
		if err != nil {
			return true
		}
		coins += len(st.Coins)
		fmt.Printf("%s\t%d coins\n", c, len(st.Coins))
		return true
	})
	fmt.Printf("%d stashes, %d coins, %s on disk\n",
		store.Len(), coins, humanize.IBytes(uint64(file.Len())))

	return nil
}

func reset(ctx *cli.Context) error {
	storage, err := game.NewDirStorage(ctx.String("state-dir"))
	if err != nil {
		return err
	}
	if err := storage.Clear(); err != nil {
		return err
	}
	slog.Info("Saved state cleared", "dir", ctx.String("state-dir"))
	return nil
}
