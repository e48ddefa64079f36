package handler

type ContextKey string

var (
	NotArrivedPersonCtx ContextKey = "notArrivedPerson"
)
