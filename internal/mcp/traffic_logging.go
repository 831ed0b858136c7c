package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// trafficLoggingMiddleware logs every MCP message at debug level. Tool calls
// carry the tool name and target section; tool results carry the active
// section they leave behind instead of the full checklist.
func trafficLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
				return next(ctx, method, req)
			}

			attrs := []any{"direction", direction, "method", method, "session_id", sessionIDOf(req)}
			if call, ok := req.(*sdkmcp.CallToolRequest); ok && call.Params != nil {
				attrs = append(attrs, "tool", call.Params.Name)
				if target := toolTargetOf(call.Params.Arguments); target.SectionID != "" {
					attrs = append(attrs, "section_id", target.SectionID)
				}
			} else {
				attrs = append(attrs, "params", formatPayload(paramsOf(req)))
			}
			logger.Debug("mcp request", attrs...)

			result, err := next(ctx, method, req)
			if strings.HasPrefix(method, "notifications/") {
				return result, err
			}

			resp := attrs[:len(attrs):len(attrs)]
			if err != nil {
				resp = append(resp, "error", err)
			} else if toolResult, ok := result.(*sdkmcp.CallToolResult); ok {
				resp = append(resp, "is_error", toolResult.IsError)
				outcome := toolOutcomeOf(toolResult)
				if outcome.ActiveSectionID != "" {
					resp = append(resp, "active_section_id", outcome.ActiveSectionID)
				}
				if outcome.Code != "" {
					resp = append(resp, "code", outcome.Code)
				}
			} else {
				resp = append(resp, "result", formatPayload(result))
			}
			logger.Debug("mcp response", resp...)

			return result, err
		}
	}
}

type toolTarget struct {
	SectionID string `json:"section_id"`
}

// toolOutcome picks the fields worth logging out of a ChecklistResponse or
// an APIError payload.
type toolOutcome struct {
	ActiveSectionID string `json:"active_section_id"`
	Code            string `json:"code"`
}

func toolTargetOf(args json.RawMessage) toolTarget {
	var target toolTarget
	if len(args) > 0 {
		_ = json.Unmarshal(args, &target)
	}
	return target
}

func toolOutcomeOf(result *sdkmcp.CallToolResult) toolOutcome {
	var outcome toolOutcome
	for _, content := range result.Content {
		if text, ok := content.(*sdkmcp.TextContent); ok {
			_ = json.Unmarshal([]byte(text.Text), &outcome)
			break
		}
	}
	return outcome
}

func sessionIDOf(req sdkmcp.Request) (id string) {
	if req == nil {
		return ""
	}
	// Some requests carry a typed nil session.
	defer func() {
		if recover() != nil {
			id = ""
		}
	}()
	if session := req.GetSession(); session != nil {
		return session.ID()
	}
	return ""
}

func paramsOf(req sdkmcp.Request) (params any) {
	if req == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			params = nil
		}
	}()
	return req.GetParams()
}

func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	return string(data)
}
