package server

import (
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/royalcat/geostash/game"
	"github.com/royalcat/geostash/geomodel"
	"github.com/royalcat/geostash/stash"
	"github.com/valyala/fasthttp"
)

func newTestServer(t *testing.T, opts ...game.Option) *server {
	t.Helper()

	move, err := meter.Int64Counter("http_move_call_total")
	if err != nil {
		t.Fatal(err)
	}
	transfer, err := meter.Int64Counter("http_transfer_call_total")
	if err != nil {
		t.Fatal(err)
	}
	coins, err := meter.Int64Counter("coins_moved_total")
	if err != nil {
		t.Fatal(err)
	}

	return &server{
		game: game.New(append([]game.Option{
			game.WithSpawnProbability(1),
			game.WithVisibilityRadius(0),
		}, opts...)...),

		metricMoveCallCount:     move,
		metricTransferCallCount: transfer,
		metricCoinsMoved:        coins,
	}
}

// richCell is a cell minted with at least min coins, found by scan.
// Population is deterministic so the scan is stable.
func richCell(t *testing.T, min int) geomodel.Cell {
	t.Helper()
	for i := int32(0); i < 100_000; i++ {
		c := geomodel.Cell{I: i, J: -2 * i}
		if stash.InitialCoins(c) >= min {
			return c
		}
	}
	t.Fatalf("no cell with %d coins found", min)
	return geomodel.Cell{}
}

func cellCoords(c geomodel.Cell) (lat, lon string) {
	const width = 1e-4
	lat = fmt.Sprintf("%f", (float64(c.I)+0.5)*width)
	lon = fmt.Sprintf("%f", (float64(c.J)+0.5)*width)
	return lat, lon
}

func moveRequest(lat, lon string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("lat", lat)
	ctx.SetUserValue("lon", lon)
	return ctx
}

func transferRequest(c geomodel.Cell, count string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("i", strconv.Itoa(int(c.I)))
	ctx.SetUserValue("j", strconv.Itoa(int(c.J)))
	ctx.SetUserValue("count", count)
	return ctx
}

func TestMoveHandler(t *testing.T) {
	s := newTestServer(t)
	cell := richCell(t, 1)

	ctx := moveRequest(cellCoords(cell))
	s.MoveHandler(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status %d, body %q", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var stashes geomodel.StashList
	if err := stashes.UnmarshalJSON(ctx.Response.Body()); err != nil {
		t.Fatalf("response does not decode: %v", err)
	}
	if len(stashes) != 1 || stashes[0].Cell != cell {
		t.Fatalf("expected the stash at %s, got %v", cell, stashes)
	}
}

func TestMoveHandlerBadCoordinates(t *testing.T) {
	s := newTestServer(t)

	for _, pair := range [][2]string{{"abc", "0"}, {"0", ""}, {"1e", "2"}} {
		ctx := moveRequest(pair[0], pair[1])
		s.MoveHandler(ctx)
		if ctx.Response.StatusCode() != http.StatusBadRequest {
			t.Errorf("lat=%q lon=%q: status %d, expected 400", pair[0], pair[1], ctx.Response.StatusCode())
		}
	}
}

func TestStashAtHandler(t *testing.T) {
	s := newTestServer(t)
	cell := richCell(t, 1)
	lat, lon := cellCoords(cell)

	s.MoveHandler(moveRequest(lat, lon))

	ctx := moveRequest(lat, lon)
	s.StashAtHandler(ctx)
	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status %d at a displayed stash", ctx.Response.StatusCode())
	}
	var st geomodel.Stash
	if err := st.UnmarshalJSON(ctx.Response.Body()); err != nil {
		t.Fatalf("response does not decode: %v", err)
	}
	if st.Cell != cell {
		t.Errorf("hit-test returned %s, expected %s", st.Cell, cell)
	}

	farLat, farLon := cellCoords(geomodel.Cell{I: cell.I + 1000, J: cell.J})
	ctx = moveRequest(farLat, farLon)
	s.StashAtHandler(ctx)
	if ctx.Response.StatusCode() != http.StatusNoContent {
		t.Errorf("status %d away from every stash, expected 204", ctx.Response.StatusCode())
	}
}

func TestCollectHandler(t *testing.T) {
	s := newTestServer(t)
	cell := richCell(t, 3)
	lat, lon := cellCoords(cell)

	s.MoveHandler(moveRequest(lat, lon))

	ctx := transferRequest(cell, "2")
	s.CollectHandler(ctx)
	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status %d, body %q", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var inv geomodel.CoinList
	if err := inv.UnmarshalJSON(ctx.Response.Body()); err != nil {
		t.Fatalf("response does not decode: %v", err)
	}
	if len(inv) != 2 {
		t.Errorf("inventory response holds %d coins, expected 2", len(inv))
	}

	ctx = transferRequest(cell, "100")
	s.CollectHandler(ctx)
	if ctx.Response.StatusCode() != http.StatusConflict {
		t.Errorf("over-collect returned %d, expected 409", ctx.Response.StatusCode())
	}

	ctx = transferRequest(geomodel.Cell{I: cell.I + 1000, J: cell.J}, "1")
	s.CollectHandler(ctx)
	if ctx.Response.StatusCode() != http.StatusNotFound {
		t.Errorf("collect on an undisplayed cell returned %d, expected 404", ctx.Response.StatusCode())
	}

	for _, bad := range []string{"x", "-1", ""} {
		ctx = transferRequest(cell, bad)
		s.CollectHandler(ctx)
		if ctx.Response.StatusCode() != http.StatusBadRequest {
			t.Errorf("count=%q returned %d, expected 400", bad, ctx.Response.StatusCode())
		}
	}
}

func TestDepositHandler(t *testing.T) {
	s := newTestServer(t)
	cell := richCell(t, 2)
	lat, lon := cellCoords(cell)

	s.MoveHandler(moveRequest(lat, lon))
	s.CollectHandler(transferRequest(cell, "2"))

	ctx := transferRequest(cell, "1")
	s.DepositHandler(ctx)
	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status %d, body %q", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var inv geomodel.CoinList
	if err := inv.UnmarshalJSON(ctx.Response.Body()); err != nil {
		t.Fatal(err)
	}
	if len(inv) != 1 {
		t.Errorf("inventory holds %d coins after deposit, expected 1", len(inv))
	}

	ctx = transferRequest(cell, "5")
	s.DepositHandler(ctx)
	if ctx.Response.StatusCode() != http.StatusConflict {
		t.Errorf("over-deposit returned %d, expected 409", ctx.Response.StatusCode())
	}
}

func TestInventoryHandler(t *testing.T) {
	s := newTestServer(t)
	cell := richCell(t, 1)
	lat, lon := cellCoords(cell)

	s.MoveHandler(moveRequest(lat, lon))
	s.CollectHandler(transferRequest(cell, "1"))

	ctx := &fasthttp.RequestCtx{}
	s.InventoryHandler(ctx)
	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("status %d", ctx.Response.StatusCode())
	}
	var inv geomodel.CoinList
	if err := inv.UnmarshalJSON(ctx.Response.Body()); err != nil {
		t.Fatal(err)
	}
	if len(inv) != 1 || inv[0].Cell != cell {
		t.Errorf("unexpected inventory %v", inv)
	}
}

func BenchmarkMoveHandler(b *testing.B) {
	move, _ := meter.Int64Counter("http_move_call_total")
	transfer, _ := meter.Int64Counter("http_transfer_call_total")
	coins, _ := meter.Int64Counter("coins_moved_total")
	s := &server{
		game: game.New(game.WithSpawnProbability(0.1), game.WithVisibilityRadius(8)),

		metricMoveCallCount:     move,
		metricTransferCallCount: transfer,
		metricCoinsMoved:        coins,
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		lat := fmt.Sprintf("%f", 36.9895+float64(i%100)*1e-4)
		ctx := moveRequest(lat, "-122.0628")
		s.MoveHandler(ctx)
		if ctx.Response.StatusCode() != http.StatusOK {
			b.Fatalf("status %d", ctx.Response.StatusCode())
		}
	}
}
