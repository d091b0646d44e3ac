package chat

import "EcommerceChatbot/pkg/response"

var (
	ErrEmptyMessage      = response.NewError(400, "message is required")
	ErrUnsupportedFrame  = response.NewError(400, "only text messages are supported")
	ErrAnswerUnavailable = response.NewError(503, "chat is temporarily unavailable")
)
