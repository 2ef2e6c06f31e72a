package models

import "encoding/json"

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WSSubscribeRide is the payload for ride subscribe and unsubscribe ops
type WSSubscribeRide struct {
	RideID string `json:"rideId"`
}

// WSSubscribeDriver is the payload for driver subscribe and unsubscribe ops
type WSSubscribeDriver struct {
	DriverUID string `json:"driverUid"`
}
