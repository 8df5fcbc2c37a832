package gemini

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/promptforge/genbridge/config"
	"github.com/promptforge/genbridge/internal/consts"
	"github.com/promptforge/genbridge/internal/modules/http_client"
	"github.com/promptforge/genbridge/internal/modules/logs"
	"github.com/promptforge/genbridge/tools"
)

// Generate performs one generateContent call and always returns a
// printable string. HTTP-level errors become
// "HTTP Error <code>: <body>", any other failure becomes
// "Error: <msg>". The caller is an embedding layer that only ever
// prints stdout, so nothing is raised past this function.
func Generate(cfg config.Gemini, message string) string {
	request := NewGenerateRequest(message)
	client := http_client.New()
	body, err := request.Body()
	if err != nil {
		return "Error: " + err.Error()
	}
	req, err := client.NewRequest(
		http.MethodPost,
		tools.FullURL(cfg.BaseURL, request.Path(cfg.Model, cfg.APIKey)),
		http_client.WithHeader("Content-Type", request.ContentType()),
		http_client.WithBody(body),
	)
	if err != nil {
		return "Error: " + err.Error()
	}
	requestID := uuid.NewString()
	reqAt := time.Now()
	resp, err := client.Do(req)
	respAt := time.Now()
	if err != nil {
		return "Error: " + err.Error()
	}
	defer resp.Body.Close()
	// The key rides in the query string, so log the model, not the path.
	logs.Logger.Info().
		Str("request_id", requestID).
		Str("supplier", consts.Gemini.String()).
		Str("model", cfg.Model).
		Str("method", req.Method).
		Int("status_code", resp.StatusCode).
		Dur("req_consume_ms", respAt.Sub(reqAt)).
		Msg("chat request")
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "Error: " + err.Error()
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Sprintf("HTTP Error %d: %s", resp.StatusCode, respBody)
	}
	text, err := ExtractText(respBody)
	if err != nil {
		return "Error: " + err.Error()
	}
	return text
}
