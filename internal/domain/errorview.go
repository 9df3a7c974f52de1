package domain

// ErrorView carries the correlation identifier shown on the error page.
type ErrorView struct {
	RequestID string `json:"requestId"`
}

// ShowRequestID reports whether a correlation identifier is available.
func (e ErrorView) ShowRequestID() bool {
	return e.RequestID != ""
}
