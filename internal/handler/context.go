package handler

type ContextKey string

var (
	SubCtxKey   ContextKey = "sub"
	AdminCtxKey ContextKey = "admin"
)
