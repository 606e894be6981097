package entity

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Audit actions derived from the HTTP verb.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditActionFor maps a mutating HTTP method to an audit action.
// ok is false for safe methods.
func AuditActionFor(method string) (string, bool) {
	switch method {
	case http.MethodPost:
		return AuditActionCreate, true
	case http.MethodPut, http.MethodPatch:
		return AuditActionUpdate, true
	case http.MethodDelete:
		return AuditActionDelete, true
	default:
		return "", false
	}
}

// AuditLogEntry is an append-only record of a successful mutation.
type AuditLogEntry struct {
	ID        uuid.UUID
	UserID    *uuid.UUID
	Action    string
	Resource  string
	Details   string
	IPAddress string
	CreatedAt time.Time
}

// NewAuditLogEntry creates a new entry stamped with the current time.
func NewAuditLogEntry(userID *uuid.UUID, action, resource, details, ipAddress string) *AuditLogEntry {
	return &AuditLogEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Action:    action,
		Resource:  resource,
		Details:   details,
		IPAddress: ipAddress,
		CreatedAt: time.Now().UTC(),
	}
}
