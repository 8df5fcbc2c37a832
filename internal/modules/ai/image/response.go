package image

import (
	"net/http"
	"time"
)

// Response carries the outcome of one synchronous image request.
type Response struct {
	Supplier   string      `json:"supplier"`
	StatusCode int         `json:"status_code"`
	RespBody   string      `json:"resp_body"`
	ReqAt      time.Time   `json:"req_at"`
	RespAt     time.Time   `json:"resp_at"`
	Payload    *B64Payload `json:"-"`
	Err        error       `json:"-"`
}

func (r *Response) Succeed() bool {
	return r.StatusCode == http.StatusOK && r.Err == nil && r.Payload != nil
}

func (r *Response) ReqConsumeMs() int64 {
	return r.RespAt.Sub(r.ReqAt).Milliseconds()
}
