package apimodels

type Response struct {
	Status  string      `json:"status"`            // fail/success
	Success bool        `json:"success"`           // same as status, for clients reading a flag
	Message string      `json:"message,omitempty"` // result or error message
	Error   string      `json:"error,omitempty"`   // error message, set on fail only
	Data    interface{} `json:"data,omitempty"`
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Success: false,
		Message: message,
		Error:   message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status:  "success",
		Success: true,
		Data:    data,
	}
}

func NewMessageResponse(message string, data interface{}) Response {
	return Response{
		Status:  "success",
		Success: true,
		Message: message,
		Data:    data,
	}
}
