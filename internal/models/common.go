package models

// Page is the list envelope every collection endpoint returns.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Count int64 `json:"count"`
}

type Message struct {
	Message string `json:"message"`
}

// AppConfig is the public configuration exposed to clients.
type AppConfig struct {
	DefaultCurrency string `json:"default_currency"`
}
