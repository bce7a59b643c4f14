package models

import "encoding/json"

// WSFrame is the envelope of every realtime message in both directions
type WSFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSError is the payload of an "error" frame
type WSError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
