package entity

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Report categories
const (
	CategoryWaste   = "waste"
	CategoryTraffic = "traffic"
	CategoryInfra   = "infra"
	CategoryOther   = "other"
)

// Report statuses
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)
