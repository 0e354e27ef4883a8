package model

// Response body status discriminators. A 2xx response can still carry
// StatusFail; transport status and application status are decoded
// separately and never conflated.
const (
	StatusTypeSuccess = "success"
	StatusTypeFail    = "fail"
)

// StatusMessage is the envelope returned by mutation endpoints and by
// failed auth exchanges.
type StatusMessage struct {
	StatusType string `json:"status_type"`
	Message    string `json:"response_message"`
}

// Failed reports whether the envelope carries the fail discriminator.
func (m StatusMessage) Failed() bool { return m.StatusType == StatusTypeFail }
