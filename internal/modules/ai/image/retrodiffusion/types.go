package retrodiffusion

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/promptforge/genbridge/config"
	"github.com/promptforge/genbridge/internal/consts"
	"github.com/promptforge/genbridge/internal/modules/ai/image"
)

// InferenceRequest is the payload POSTed to /v1/inferences.
type InferenceRequest struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Prompt      string `json:"prompt"`
	NumImages   int    `json:"num_images"`
	PromptStyle string `json:"prompt_style"`
}

func NewInferenceRequest(sprite config.Sprite) *InferenceRequest {
	return &InferenceRequest{
		Width:       sprite.Width,
		Height:      sprite.Height,
		Prompt:      sprite.Prompt,
		NumImages:   sprite.NumImages,
		PromptStyle: sprite.PromptStyle,
	}
}

func (r *InferenceRequest) Body() (io.Reader, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(data), nil
}

func (r *InferenceRequest) ContentType() string {
	return "application/json"
}

func (r *InferenceRequest) Path() string {
	return "/v1/inferences"
}

func (r *InferenceRequest) InitResponse() *image.Response {
	return &image.Response{
		Supplier: consts.RetroDiffusion.String(),
	}
}
