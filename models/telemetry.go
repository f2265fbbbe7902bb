package models

import "encoding/json"

type TelemetryReceipt struct {
	Status string          `json:"status"`
	ID     string          `json:"id"`
	Data   json.RawMessage `json:"data"`
}
