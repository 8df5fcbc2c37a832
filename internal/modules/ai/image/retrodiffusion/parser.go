package retrodiffusion

import (
	"io"
	"net/http"
	"time"

	"github.com/promptforge/genbridge/internal/modules/ai/image"
	"github.com/promptforge/genbridge/internal/modules/logs"
)

type InferenceParser struct{}

func (p *InferenceParser) Parse(resp *http.Response, response *image.Response) error {
	response.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		// Error bodies are read best-effort under a deadline; a read
		// that fails or stalls leaves RespBody empty instead of
		// escalating.
		response.RespBody = string(readAllTimeout(resp.Body, 30*time.Second))
		response.Err = image.StatusCodeError
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	response.RespBody = string(body)
	logs.Logger.Debug().Str("supplier", response.Supplier).
		Str("body", string(body)).Msg("inference response body")
	payload, err := image.ExtractB64(body)
	if err != nil {
		response.Err = err
		return nil
	}
	response.Payload = payload
	return nil
}

func readAllTimeout(r io.Reader, timeout time.Duration) []byte {
	type result struct {
		data []byte
		err  error
	}
	resultCh := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		resultCh <- result{data: data, err: err}
	}()
	select {
	case res := <-resultCh:
		if res.err != nil {
			return nil
		}
		return res.data
	case <-time.After(timeout):
		return nil
	}
}
