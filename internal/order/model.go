package order

import "time"

// Order is a service request placed by a customer with a provider.
type Order struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	CustomerID string    `json:"customerId,omitempty" bson:"customerId,omitempty"`
	UserID     string    `json:"userId,omitempty" bson:"userId,omitempty"`
	ProviderID string    `json:"providerId,omitempty" bson:"providerId,omitempty"`
	Service    string    `json:"service,omitempty" bson:"service,omitempty"`
	Status     string    `json:"status,omitempty" bson:"status,omitempty"`
	City       string    `json:"city,omitempty" bson:"city,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// CompletedRequest is a finished service request carrying the mutual
// acceptance log and both parties' ratings. Field presence is optional:
// older records name the customer under userId/userName, newer ones under
// customerId/customerName.
type CompletedRequest struct {
	ID                   string    `json:"id" bson:"_id,omitempty"`
	UserID               string    `json:"userId,omitempty" bson:"userId,omitempty"`
	CustomerID           string    `json:"customerId,omitempty" bson:"customerId,omitempty"`
	ProviderID           string    `json:"providerId,omitempty" bson:"providerId,omitempty"`
	UserName             string    `json:"userName,omitempty" bson:"userName,omitempty"`
	CustomerName         string    `json:"customerName,omitempty" bson:"customerName,omitempty"`
	ProviderName         string    `json:"providerName,omitempty" bson:"providerName,omitempty"`
	Service              string    `json:"service,omitempty" bson:"service,omitempty"`
	CustomerRating       float64   `json:"customerRating,omitempty" bson:"customerRating,omitempty"`
	CustomerReview       string    `json:"customerReview,omitempty" bson:"customerReview,omitempty"`
	ProviderRating       float64   `json:"providerRating,omitempty" bson:"providerRating,omitempty"`
	ProviderReview       string    `json:"providerReview,omitempty" bson:"providerReview,omitempty"`
	UserProfileImage     string    `json:"userProfileImage,omitempty" bson:"userProfileImage,omitempty"`
	ProviderProfileImage string    `json:"providerProfileImage,omitempty" bson:"providerProfileImage,omitempty"`
	ImageURL             string    `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	AcceptedAt           time.Time `json:"acceptedAt,omitempty" bson:"acceptedAt,omitempty"`
	CompletedAt          time.Time `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	RatedAt              time.Time `json:"ratedAt,omitempty" bson:"ratedAt,omitempty"`
	CreatedAt            time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// CustomerKey returns whichever customer id field the record carries.
func (r CompletedRequest) CustomerKey() string {
	if r.UserID != "" {
		return r.UserID
	}
	return r.CustomerID
}
