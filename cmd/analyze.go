package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/swiftguard/swiftguard/pkg/engine"
	"github.com/swiftguard/swiftguard/pkg/models"
)

// analysisRequest is the envelope read from stdin.
type analysisRequest struct {
	Code string `json:"code"`
}

// errorResponse reports failure in the payload itself; the exit code
// additionally signals malformed input and internal failures.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Reads a JSON request from stdin and writes the analysis result to stdout",
	Long: `Reads {"code": "<swift source>"} from stdin, runs all lint rules and
writes the result as JSON. Missing code yields an error payload with exit
code 0; undecodable input and internal failures yield an error payload
with a non-zero exit code.`,
	Run: func(cmd *cobra.Command, args []string) {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			out := marshal(errorResponse{Status: "error", Message: "Analysis failed: " + err.Error()})
			fmt.Println(string(out))
			os.Exit(1)
		}

		out, exitCode := runAnalysis(input)
		fmt.Println(string(out))
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// runAnalysis handles one raw request payload and returns the response
// body plus the process exit code. Kept free of os.Exit so it can be
// tested directly.
func runAnalysis(input []byte) ([]byte, int) {
	var req analysisRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return marshal(errorResponse{Status: "error", Message: "Invalid JSON input: " + err.Error()}), 1
	}

	if req.Code == "" {
		return marshal(errorResponse{Status: "error", Message: "No Swift code provided for analysis."}), 0
	}

	result, err := safeAnalyze(req.Code)
	if err != nil {
		return marshal(errorResponse{Status: "error", Message: "Analysis failed: " + err.Error()}), 1
	}
	return marshal(result), 0
}

// safeAnalyze shields the transport from any unexpected fault inside the
// engine. No partial violation list escapes this boundary: a panic turns
// the whole request into a failure.
func safeAnalyze(code string) (result *models.AnalysisResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return engine.New().Analyze(code), nil
}

func marshal(v any) []byte {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// The response types cannot fail to marshal; keep the contract
		// of always emitting a JSON body anyway.
		return []byte(`{"status":"error","message":"Analysis failed: response encoding"}`)
	}
	return out
}
