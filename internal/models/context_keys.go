package models

// Gin context keys set by the auth middleware.
const (
	CtxKeyUserID     = "user_id"
	CtxKeyAccessUUID = "access_uuid"
	CtxKeyRoles      = "user_roles"
)
