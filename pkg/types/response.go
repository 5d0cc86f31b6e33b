package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// DeleteResponse mirrors the item backend's delete acknowledgement.
type DeleteResponse struct {
	Message string `json:"message"`
	Deleted any    `json:"deleted"`
}
