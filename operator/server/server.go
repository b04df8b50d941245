package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/productscience/liquidstake/operator/logging"
	"github.com/productscience/liquidstake/operator/maintenance"
)

// ReportSource exposes the latest maintenance run.
type ReportSource interface {
	LastReport() (maintenance.RunReport, uint64, bool)
}

type Server struct {
	e       *echo.Echo
	reports ReportSource
}

type statusResponse struct {
	Runs    uint64                 `json:"runs"`
	LastRun *maintenance.RunReport `json:"last_run,omitempty"`
}

func NewServer(reports ReportSource) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{e: e, reports: reports}
	e.GET("/status", s.getStatus)
	e.GET("/healthz", s.getHealth)
	return s
}

func (s *Server) getStatus(c echo.Context) error {
	report, runs, ok := s.reports.LastReport()
	resp := statusResponse{Runs: runs}
	if ok {
		resp.LastRun = &report
	}
	return c.JSON(http.StatusOK, resp)
}

// getHealth fails only when the latest run failed.
func (s *Server) getHealth(c echo.Context) error {
	report, _, ok := s.reports.LastReport()
	if ok && !report.OK() {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"run_id": report.ID,
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

// Start serves on addr until Shutdown is called.
func (s *Server) Start(addr string) {
	go func() {
		logging.Info("status server listening", logging.Server, "addr", addr)
		if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("status server failed", logging.Server, "error", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
