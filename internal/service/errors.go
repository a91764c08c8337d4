package service

import "errors"

// 业务错误，handler 层按类型映射状态码
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")

	ErrSelfFollow = errors.New("cannot follow yourself")

	// 消息闸门：follow 未通过前最多发 1 条
	ErrMessageLimit = errors.New("You can only send 1 message before your friend request is accepted.")
)
