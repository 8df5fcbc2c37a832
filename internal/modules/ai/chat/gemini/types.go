package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// generateContent wire types.

type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	Content Content `json:"content"`
}

func NewGenerateRequest(message string) *GenerateRequest {
	return &GenerateRequest{
		Contents: []Content{{Parts: []Part{{Text: message}}}},
	}
}

func (r *GenerateRequest) Body() (io.Reader, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewBuffer(data), nil
}

func (r *GenerateRequest) ContentType() string {
	return "application/json"
}

func (r *GenerateRequest) Path(model, apiKey string) string {
	return fmt.Sprintf("/v1beta/models/%s:generateContent?key=%s", model, apiKey)
}
