package gemini

import (
	jsoniter "github.com/json-iterator/go"
)

// ExtractText returns the first candidate's first part text; the text
// field itself being absent yields "". A response missing any layer
// of that structure is re-serialized whole instead, so the caller
// always gets something printable. Only a body that is not JSON at
// all is an error.
func ExtractText(body []byte) (string, error) {
	var parsed GenerateResponse
	if err := jsoniter.Unmarshal(body, &parsed); err == nil {
		if len(parsed.Candidates) > 0 && len(parsed.Candidates[0].Content.Parts) > 0 {
			return parsed.Candidates[0].Content.Parts[0].Text, nil
		}
	}
	var raw any
	if err := jsoniter.Unmarshal(body, &raw); err != nil {
		return "", err
	}
	out, err := jsoniter.Marshal(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
