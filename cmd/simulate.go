package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fogleman/poissondisc"
	"github.com/paulmach/orb"
	"github.com/royalcat/geostash/game"
	"github.com/royalcat/geostash/internal/stats"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v3"
)

// waypointSpacing is the minimum distance between simulated walk
// targets, in degrees. A couple of tiles, so consecutive moves
// actually change the visible grid.
const waypointSpacing = 5e-4

const waypointSpan = 0.01

func simulate(ctx *cli.Context) error {
	games := ctx.Int("games")
	moves := ctx.Int("moves")
	threads := ctx.Int("threads")
	if threads == 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	lat := ctx.Float64("lat")
	lon := ctx.Float64("lon")

	collector, err := stats.NewCollector(time.Second)
	if err != nil {
		return err
	}
	collector.Start()

	// scatter walk targets around the origin, poisson disc keeps the
	// walk from clustering on one tile
	waypoints := poissondisc.Sample(
		lon-waypointSpan, lat-waypointSpan,
		lon+waypointSpan, lat+waypointSpan,
		waypointSpacing, 30, nil)
	if len(waypoints) == 0 {
		return fmt.Errorf("no waypoints sampled around %f,%f", lat, lon)
	}

	fmt.Printf("Simulating %d game(s), %d moves each over %d waypoints\n", games, moves, len(waypoints))
	bar := pb.StartNew(games * moves)

	p := pool.New().WithErrors().WithMaxGoroutines(threads)
	for i := 0; i < games; i++ {
		rnd := rand.New(rand.NewSource(ctx.Int64("seed") + int64(i)))
		p.Go(func() error {
			return runBot(ctx, rnd, waypoints, moves, bar)
		})
	}
	err = p.Wait()
	bar.Finish()
	summary := collector.Stop()

	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if statsFile := ctx.String("stats"); statsFile != "" {
		f, err := os.Create(statsFile)
		if err != nil {
			return err
		}
		defer f.Close()
		return summary.WriteReport(f)
	}
	return summary.WriteReport(os.Stdout)
}

// runBot plays one independent game: walk to a random waypoint,
// collect a coin where possible, occasionally deposit one back.
func runBot(ctx *cli.Context, rnd *rand.Rand, waypoints []poissondisc.Point, moves int, bar *pb.ProgressBar) error {
	g := game.New(
		game.WithStorage(game.NewMemStorage()),
		game.WithSpawnProbability(ctx.Float64("spawn-probability")),
		game.WithVisibilityRadius(ctx.Int("radius")),
	)

	for m := 0; m < moves; m++ {
		wp := waypoints[rnd.Intn(len(waypoints))]
		stashes, err := g.MovePlayer(orb.Point{wp.X, wp.Y})
		if err != nil {
			return err
		}

		for _, st := range stashes {
			if len(st.Coins) == 0 {
				continue
			}
			if err := g.Collect(st.Cell, 1); err != nil {
				return err
			}
			if rnd.Intn(4) == 0 {
				if err := g.Deposit(st.Cell, 1); err != nil {
					return err
				}
			}
			break
		}

		bar.Increment()
	}

	return nil
}
