// Package api exposes the backtest engine over HTTP: upload two bar series,
// get the analytics report back. The engine itself knows nothing about this
// layer.
package api

import (
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/damienborowski/AlphaFinity-v2/backtest"
	"github.com/damienborowski/AlphaFinity-v2/config"
	"github.com/damienborowski/AlphaFinity-v2/journal"
	"github.com/damienborowski/AlphaFinity-v2/ledger"
	"github.com/damienborowski/AlphaFinity-v2/market"
	"github.com/damienborowski/AlphaFinity-v2/strategies"
)

// Server wires the HTTP surface to the engine.
type Server struct {
	cfg     *config.Config
	journal journal.Journal
}

// NewServer builds a server. j may be nil to disable run persistence.
func NewServer(cfg *config.Config, j journal.Journal) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Server{cfg: cfg, journal: j}
}

// Router assembles the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), recoveryMiddleware(), corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.POST("/backtest", s.runBacktest)

	return r
}

// runBacktest handles POST /api/v1/backtest: a multipart upload with two
// JSON bar files (benchmarkData, strategyData) and optional strategy /
// capital form fields.
func (s *Server) runBacktest(c *gin.Context) {
	benchmark, err := seriesFromForm(c, "benchmarkData")
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_BENCHMARK_DATA", err.Error())
		return
	}
	strategySeries, err := seriesFromForm(c, "strategyData")
	if err != nil {
		fail(c, http.StatusBadRequest, "INVALID_STRATEGY_DATA", err.Error())
		return
	}

	name := c.PostForm("strategy")
	if name == "" {
		name = s.cfg.Strategy.Name
	}
	exec := ledger.NewExecutor()
	strat, err := strategies.ByName(name, exec, s.cfg.Strategy.Settings())
	if err != nil {
		fail(c, http.StatusBadRequest, "UNKNOWN_STRATEGY", err.Error())
		return
	}

	capital := s.cfg.Account.StartingCapital
	if v := c.PostForm("capital"); v != "" {
		capital, err = strconv.ParseFloat(v, 64)
		if err != nil || capital <= 0 {
			fail(c, http.StatusBadRequest, "INVALID_CAPITAL", "capital must be a positive number")
			return
		}
	}

	runner := &backtest.Runner{
		Strategy:        strat,
		Executor:        exec,
		StartingCapital: capital,
	}

	res, err := runner.Run(benchmark, strategySeries)
	if err != nil {
		fail(c, http.StatusBadRequest, "BACKTEST_REJECTED", err.Error())
		return
	}

	if s.journal != nil {
		if runID, err := s.journal.RecordRun(strat.Name(), res); err != nil {
			// Persistence is best-effort for the API path; the report is
			// still returned.
			log.Printf("api: record run: %v", err)
		} else {
			c.Header("X-Run-ID", runID)
		}
	}

	c.JSON(http.StatusOK, res.Report)
}

func seriesFromForm(c *gin.Context, field string) (*market.Series, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	return market.ParseSeriesJSON(f)
}
