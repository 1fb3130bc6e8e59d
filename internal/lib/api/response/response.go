package response

// Response is the generic API envelope for error and acknowledgement bodies.
// Endpoint-specific success payloads are rendered as their own structs.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

func Ok(data any) Response {
	return Response{
		Status: "ok",
		Data:   data,
	}
}

func Error(msg string) Response {
	return Response{
		Status: "error",
		Error:  msg,
	}
}
