package entity

// AuditLogFilter narrows the audit trail for the repository layer.
// Zero values match everything.
type AuditLogFilter struct {
	Entity   string // matched against the action prefix, e.g. client
	EntityID int    // entity_id recorded in the metadata
	Action   string // full action, e.g. client.update
	UserID   int    // acting user
}
