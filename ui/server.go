// Package ui serves the HTML dashboard: each tier report rendered from
// markdown. Read-only over the intelligence service.
package ui

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"prosignal/adapters/render"
	"prosignal/app"
	"prosignal/domain/report"
	"prosignal/domain/signal"
)

// Server represents the dashboard web server
type Server struct {
	router *gin.Engine
	svc    *app.IntelligenceService
	policy signal.ThresholdPolicy
}

// Config holds dashboard server configuration
type Config struct {
	Port    string
	GinMode string
}

// NewServer creates the dashboard server around an intelligence service
func NewServer(config Config, svc *app.IntelligenceService) *Server {
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}

	s := &Server{
		router: gin.Default(),
		svc:    svc,
		policy: svc.Engine().Policy(),
	}

	s.router.GET("/", s.handleIndex)
	s.router.GET("/reports/:tier", s.handleReport)
	return s
}

// Run blocks serving the dashboard on the configured port
func (s *Server) Run(port string) error {
	log.Printf("[Dashboard] Listening on :%s", port)
	return s.router.Run(":" + port)
}

func (s *Server) handleIndex(c *gin.Context) {
	stats := s.svc.Engine().Stats()
	md := fmt.Sprintf(
		"# Signal Intelligence\n\n%d signals accumulated, framework efficiency %.2f\n\n"+
			"- [Executive Summary](/reports/executive)\n"+
			"- [Strategic Dashboard](/reports/strategic)\n"+
			"- [Tactical Interventions](/reports/interventions)\n"+
			"- [Full Detail](/reports/detail)\n",
		stats.TotalSignals, stats.FrameworkEfficiency)
	s.renderPage(c, md)
}

func (s *Server) handleReport(c *gin.Context) {
	tier, err := report.ParseTier(c.Param("tier"))
	if err != nil {
		c.String(http.StatusNotFound, "unknown report tier")
		return
	}

	engine := s.svc.Engine()
	var md string
	switch tier {
	case report.TierExecutive:
		md = render.ExecutiveMarkdown(engine.GenerateExecutive())
	case report.TierStrategic:
		md = render.StrategicMarkdown(engine.GenerateStrategic(), s.policy.L2MaxSignals)
	case report.TierInterventions:
		md = render.InterventionsMarkdown(engine.GenerateInterventions(), s.policy.L3MaxSignals)
	case report.TierDetail:
		md = render.DetailMarkdown(engine.GenerateDetail())
	}
	s.renderPage(c, md)
}

func (s *Server) renderPage(c *gin.Context, md string) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, pageShell(string(render.ToHTML(md))))
}

func pageShell(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<title>Signal Intelligence</title>
<style>
body { font-family: sans-serif; max-width: 56rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.6rem; }
</style>
</head>
<body>
%s
</body>
</html>`, body)
}
