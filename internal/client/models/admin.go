package models

// AdminAction is a privileged operation that has to pass the admin gate.
type AdminAction string

const (
	AdminActionUpdate AdminAction = "update"
	AdminActionDelete AdminAction = "delete"
)

// AdminGateRequest is the pending privileged action collected by the admin
// gate. It only lives between the request and its confirmation or cancel.
type AdminGateRequest struct {
	Action    AdminAction
	StudentID string
	Password  string
}
