package server

import (
	"encoding/json"
	"time"
)

// MessageType identifies the purpose of a WebSocket message.
type MessageType string

const (
	// Client → Server
	MessageTypeClassifyPoker   MessageType = "classify_poker"
	MessageTypeClassifyYahtzee MessageType = "classify_yahtzee"

	// Server → Client
	MessageTypeResult MessageType = "result"
	MessageTypeError  MessageType = "error"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// ClassifyPokerData asks for the category of a five-card hand. Cards use
// compact notation, e.g. ["As","Ks","Qs","Js","Ts"].
type ClassifyPokerData struct {
	Cards []string `json:"cards"`
}

// ClassifyYahtzeeData asks for the combination and score of a five-die roll.
type ClassifyYahtzeeData struct {
	Dice []int `json:"dice"`
}

// ResultData carries a classification back to the client. Score is only
// present for Yahtzee rolls.
type ResultData struct {
	Game     string `json:"game"`
	Category string `json:"category"`
	Score    *int   `json:"score,omitempty"`
}

// ErrorData reports a request-level failure without closing the connection.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrorCodeBadMessage  = "bad_message"
	ErrorCodeBadRequest  = "bad_request"
	ErrorCodeUnknownType = "unknown_type"
)
