package retrodiffusion

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/promptforge/genbridge/config"
	"github.com/promptforge/genbridge/internal/modules/ai/image"
	"github.com/promptforge/genbridge/internal/modules/http_client"
	"github.com/promptforge/genbridge/internal/modules/logs"
	"github.com/promptforge/genbridge/tools"
)

// CreateInference performs one synchronous inference call. Transport
// failures are returned as errors; HTTP-level and extraction failures
// are carried inside the response.
func CreateInference(ctx context.Context, cfg config.RetroDiffusion, sprite config.Sprite) (*image.Response, error) {
	request := NewInferenceRequest(sprite)
	ret := request.InitResponse()
	client := http_client.New()
	body, err := request.Body()
	if err != nil {
		return nil, err
	}
	req, err := client.NewRequest(
		http.MethodPost,
		tools.FullURL(cfg.BaseURL, request.Path()),
		http_client.WithHeader("X-RD-Token", cfg.Token),
		http_client.WithHeader("Content-Type", request.ContentType()),
		http_client.WithBody(body),
		http_client.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	reqAt := time.Now()
	resp, err := client.Do(req)
	respAt := time.Now()
	ret.ReqAt = reqAt
	ret.RespAt = respAt
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	logs.Logger.Info().
		Str("request_id", requestID).
		Str("supplier", ret.Supplier).
		Str("path", request.Path()).
		Str("method", req.Method).
		Int("status_code", resp.StatusCode).
		Dur("req_consume_ms", respAt.Sub(reqAt)).
		Msg("image request")
	err = (&InferenceParser{}).Parse(resp, ret)
	if err != nil {
		return nil, err
	}
	return ret, nil
}
