// websocket/request_updates.go
package websocket

import (
	"encoding/json"
	"log"
	"time"
)

// RequestUpdate is a real-time asset-request event pushed to HR dashboards.
type RequestUpdate struct {
	Type           string      `json:"type"` // REQUEST_CREATED, REQUEST_STATUS_CHANGE
	RequestID      string      `json:"requestId,omitempty"`
	Data           interface{} `json:"data,omitempty"`
	Timestamp      time.Time   `json:"timestamp"`
	RequesterEmail string      `json:"requesterEmail,omitempty"`
}

// BroadcastRequestUpdate sends an update to all connected clients of the
// HR tenant.
func (h *Hub) BroadcastRequestUpdate(hrEmail string, update RequestUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		log.Printf("Failed to marshal request update: %v", err)
		return
	}
	h.broadcast(hrEmail, data)
}

// SendRequestCreated broadcasts a new asset request.
func (h *Hub) SendRequestCreated(hrEmail string, request interface{}, requesterEmail string) {
	h.BroadcastRequestUpdate(hrEmail, RequestUpdate{
		Type:           "REQUEST_CREATED",
		Data:           request,
		Timestamp:      time.Now(),
		RequesterEmail: requesterEmail,
	})
}

// SendRequestStatusChange broadcasts a request status transition.
func (h *Hub) SendRequestStatusChange(hrEmail, requestID, oldStatus, newStatus string) {
	h.BroadcastRequestUpdate(hrEmail, RequestUpdate{
		Type:      "REQUEST_STATUS_CHANGE",
		RequestID: requestID,
		Data: map[string]interface{}{
			"oldStatus": oldStatus,
			"newStatus": newStatus,
		},
		Timestamp: time.Now(),
	})
}
