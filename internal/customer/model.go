package customer

import "time"

// Customer represents a customer account record. Customers carry no
// verification state; the platform treats them as active once registered.
type Customer struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UID       string    `json:"uid" bson:"uid"`
	Name      string    `json:"name" bson:"name,omitempty"`
	Email     string    `json:"email" bson:"email,omitempty"`
	Phone     string    `json:"phone" bson:"phone,omitempty"`
	City      string    `json:"city" bson:"city,omitempty"`
	Role      string    `json:"role" bson:"role,omitempty"`
	FCMToken  string    `json:"-" bson:"fcmToken,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// UpdateInput captures the editable contact fields.
type UpdateInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}
