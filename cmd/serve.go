package cmd

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/swiftguard/swiftguard/pkg/config"
	"github.com/swiftguard/swiftguard/pkg/engine"
	"github.com/swiftguard/swiftguard/pkg/logging"
)

var (
	configPath string
	debugMode  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analyzer over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err := logging.New(debugMode || cfg.Logging.Debug)
		if err != nil {
			return err
		}
		defer logger.Sync()

		if !debugMode && !cfg.Logging.Debug {
			gin.SetMode(gin.ReleaseMode)
		}

		analyzer := engine.New()

		r := gin.Default()
		r.SetTrustedProxies(cfg.Server.TrustedProxies)

		r.GET("/healthz", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		r.POST("/api/v1/analyze", newAnalyzeHandler(analyzer))

		logger.Infow("listening", "addr", cfg.Server.Addr)
		return r.Run(cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	serveCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

// newAnalyzeHandler mirrors the stdin contract over HTTP: the same
// request envelope, the same error payloads, HTTP status in place of the
// process exit code.
func newAnalyzeHandler(analyzer *engine.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req analysisRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{
				Status:  "error",
				Message: "Invalid JSON input: " + err.Error(),
			})
			return
		}
		if req.Code == "" {
			c.JSON(http.StatusBadRequest, errorResponse{
				Status:  "error",
				Message: "No Swift code provided for analysis.",
			})
			return
		}
		c.JSON(http.StatusOK, analyzer.Analyze(req.Code))
	}
}
