package provider

import "time"

// Account statuses a provider moves through during verification. A provider
// holds exactly one of these at any time.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Provider represents a service-provider account subject to the admin
// verification workflow. ServiceType is derived from ServiceCategory on
// read and never stored.
type Provider struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	UID             string    `json:"uid" bson:"uid"`
	Name            string    `json:"name" bson:"name,omitempty"`
	Email           string    `json:"email" bson:"email,omitempty"`
	Phone           string    `json:"phone" bson:"phone,omitempty"`
	City            string    `json:"city" bson:"city,omitempty"`
	ServiceCategory string    `json:"serviceCategory" bson:"serviceCategory,omitempty"`
	ServiceType     string    `json:"serviceType" bson:"-"`
	Subcategories   []string  `json:"subcategories" bson:"subcategories,omitempty"`
	AccountStatus   string    `json:"accountStatus" bson:"accountStatus,omitempty"`
	Reason          string    `json:"reason,omitempty" bson:"reason,omitempty"`
	ReviewedAt      time.Time `json:"reviewedAt,omitempty" bson:"reviewedAt,omitempty"`
	CNICFront       string    `json:"cnicFront,omitempty" bson:"cnicFront,omitempty"`
	CNICBack        string    `json:"cnicBack,omitempty" bson:"cnicBack,omitempty"`
	ProfileImage    string    `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	FCMToken        string    `json:"-" bson:"fcmToken,omitempty"`
	Role            string    `json:"role" bson:"role,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// CreateInput captures the fields an operator supplies when creating a
// provider record from the dashboard. The record always starts pending.
type CreateInput struct {
	UID             string   `json:"uid"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	City            string   `json:"city"`
	ServiceCategory string   `json:"serviceCategory"`
	Subcategories   []string `json:"subcategories"`
}

// UpdateInput captures the editable contact fields.
type UpdateInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}

// StatusCounts aggregates providers by verification state.
type StatusCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
}
