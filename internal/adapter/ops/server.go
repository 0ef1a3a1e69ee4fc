// Package ops exposes the bot's liveness and cycle KPIs over a small HTTP
// server, so a long-running session can be inspected without reading logs.
package ops

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Server struct {
	hz *server.Hertz
}

func NewServer(addr string, kpi kpiSnapshotProvider) *Server {
	hz := server.Default(server.WithHostPorts(addr))

	hz.GET("/healthz", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
	})
	hz.GET("/ops/metrics", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, kpi.SnapshotAny())
	})

	return &Server{hz: hz}
}

// Spin blocks serving requests; run it on its own goroutine.
func (s *Server) Spin() {
	s.hz.Spin()
}
