package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/royalcat/geostash/game"
	"github.com/royalcat/geostash/geomodel"
	"github.com/royalcat/geostash/stash"
	"github.com/valyala/fasthttp"
)

func pointFromUserValues(ctx *fasthttp.RequestCtx) (orb.Point, bool) {
	latS := ctx.UserValue("lat").(string)
	lonS := ctx.UserValue("lon").(string)

	lat, err := strconv.ParseFloat(latS, 64)
	if err != nil {
		return orb.Point{}, false
	}
	lon, err := strconv.ParseFloat(lonS, 64)
	if err != nil {
		return orb.Point{}, false
	}
	return orb.Point{lon, lat}, true
}

func cellFromUserValues(ctx *fasthttp.RequestCtx) (geomodel.Cell, bool) {
	iS := ctx.UserValue("i").(string)
	jS := ctx.UserValue("j").(string)

	i, err := strconv.ParseInt(iS, 10, 32)
	if err != nil {
		return geomodel.Cell{}, false
	}
	j, err := strconv.ParseInt(jS, 10, 32)
	if err != nil {
		return geomodel.Cell{}, false
	}
	return geomodel.Cell{I: int32(i), J: int32(j)}, true
}

func (s *server) MoveHandler(ctx *fasthttp.RequestCtx) {
	s.metricMoveCallCount.Add(ctx, 1)

	p, ok := pointFromUserValues(ctx)
	if !ok {
		ctx.Response.SetStatusCode(http.StatusBadRequest)
		return
	}

	stashes, err := s.game.MovePlayer(p)
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString("failed to repopulate: " + err.Error())
		return
	}

	out, err := stashes.MarshalJSON()
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString("failed to marshal response")
		return
	}

	ctx.Response.SetStatusCode(http.StatusOK)
	ctx.Response.SetBody(out)
}

func (s *server) StashesHandler(ctx *fasthttp.RequestCtx) {
	out, err := s.game.Stashes().MarshalJSON()
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString("failed to marshal response")
		return
	}

	ctx.Response.SetStatusCode(http.StatusOK)
	ctx.Response.SetBody(out)
}

func (s *server) StashAtHandler(ctx *fasthttp.RequestCtx) {
	p, ok := pointFromUserValues(ctx)
	if !ok {
		ctx.Response.SetStatusCode(http.StatusBadRequest)
		return
	}

	st, ok := s.game.StashAt(p)
	if !ok {
		ctx.Response.SetStatusCode(http.StatusNoContent)
		return
	}

	out, err := st.MarshalJSON()
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString("failed to marshal response")
		return
	}

	ctx.Response.SetStatusCode(http.StatusOK)
	ctx.Response.SetBody(out)
}

func (s *server) InventoryHandler(ctx *fasthttp.RequestCtx) {
	out, err := s.game.Inventory().MarshalJSON()
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString("failed to marshal response")
		return
	}

	ctx.Response.SetStatusCode(http.StatusOK)
	ctx.Response.SetBody(out)
}

func (s *server) CollectHandler(ctx *fasthttp.RequestCtx) {
	s.transferHandler(ctx, s.game.Collect)
}

func (s *server) DepositHandler(ctx *fasthttp.RequestCtx) {
	s.transferHandler(ctx, s.game.Deposit)
}

func (s *server) transferHandler(ctx *fasthttp.RequestCtx, transfer func(geomodel.Cell, int) error) {
	s.metricTransferCallCount.Add(ctx, 1)

	cell, ok := cellFromUserValues(ctx)
	if !ok {
		ctx.Response.SetStatusCode(http.StatusBadRequest)
		return
	}
	count, err := strconv.Atoi(ctx.UserValue("count").(string))
	if err != nil || count < 0 {
		ctx.Response.SetStatusCode(http.StatusBadRequest)
		return
	}

	err = transfer(cell, count)
	switch {
	case errors.Is(err, stash.ErrInsufficientCoins):
		// expected user-facing outcome, not a server fault
		ctx.Response.SetStatusCode(http.StatusConflict)
		ctx.Response.SetBodyString(err.Error())
		return
	case errors.Is(err, game.ErrUnknownStash):
		ctx.Response.SetStatusCode(http.StatusNotFound)
		ctx.Response.SetBodyString(err.Error())
		return
	case err != nil:
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString(err.Error())
		return
	}

	s.metricCoinsMoved.Add(ctx, int64(count))

	out, err := s.game.Inventory().MarshalJSON()
	if err != nil {
		ctx.Response.SetStatusCode(http.StatusInternalServerError)
		ctx.Response.SetBodyString("failed to marshal response")
		return
	}

	ctx.Response.SetStatusCode(http.StatusOK)
	ctx.Response.SetBody(out)
}
