package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type solveRequest struct {
	Input   string `json:"input"`
	Part    int    `json:"part"`    // 0 = both
	Minutes uint32 `json:"minutes"` // overrides the part's budget when set
}

var lambdaLog = newLogger(os.Stderr, DefaultConfig().Log, false)

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req solveRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if req.Input == "" {
		return errResp(400, "missing input field")
	}
	if req.Part < 0 || req.Part > 2 {
		return errResp(400, fmt.Sprintf("part must be 0, 1 or 2, got %d", req.Part))
	}

	bps, err := loadFromString(req.Input)
	if err != nil {
		return errResp(400, err.Error())
	}

	cfg := DefaultConfig()
	if req.Minutes > 0 {
		cfg.PartOne.Minutes = req.Minutes
		cfg.PartTwo.Minutes = req.Minutes
	}
	runner := NewRunner(cfg, lambdaLog.With("request", event.RequestContext.RequestID), nil)
	parts, err := runner.Run(ctx, bps, req.Part)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return errResp(504, err.Error())
		}
		return errResp(500, err.Error())
	}

	respJSON, err := json.Marshal(newRunOutput(parts, runner.workers()))
	if err != nil {
		return errResp(500, err.Error())
	}
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	lambdaLog.Warn("request rejected", slog.Int("status", code), slog.String("error", msg))
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
