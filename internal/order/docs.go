package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type orderDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID string             `bson:"customerId,omitempty"`
	UserID     string             `bson:"userId,omitempty"`
	ProviderID string             `bson:"providerId,omitempty"`
	Service    string             `bson:"service,omitempty"`
	Status     string             `bson:"status,omitempty"`
	City       string             `bson:"city,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt  time.Time          `bson:"updatedAt,omitempty"`
}

func (d orderDoc) toOrder() Order {
	return Order{
		ID:         d.ID.Hex(),
		CustomerID: d.CustomerID,
		UserID:     d.UserID,
		ProviderID: d.ProviderID,
		Service:    d.Service,
		Status:     d.Status,
		City:       d.City,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type completedDoc struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	UserID               string             `bson:"userId,omitempty"`
	CustomerID           string             `bson:"customerId,omitempty"`
	ProviderID           string             `bson:"providerId,omitempty"`
	UserName             string             `bson:"userName,omitempty"`
	CustomerName         string             `bson:"customerName,omitempty"`
	ProviderName         string             `bson:"providerName,omitempty"`
	Service              string             `bson:"service,omitempty"`
	CustomerRating       float64            `bson:"customerRating,omitempty"`
	CustomerReview       string             `bson:"customerReview,omitempty"`
	ProviderRating       float64            `bson:"providerRating,omitempty"`
	ProviderReview       string             `bson:"providerReview,omitempty"`
	UserProfileImage     string             `bson:"userProfileImage,omitempty"`
	ProviderProfileImage string             `bson:"providerProfileImage,omitempty"`
	ImageURL             string             `bson:"imageUrl,omitempty"`
	AcceptedAt           time.Time          `bson:"acceptedAt,omitempty"`
	CompletedAt          time.Time          `bson:"completedAt,omitempty"`
	RatedAt              time.Time          `bson:"ratedAt,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt,omitempty"`
}

func (d completedDoc) toCompleted() CompletedRequest {
	return CompletedRequest{
		ID:                   d.ID.Hex(),
		UserID:               d.UserID,
		CustomerID:           d.CustomerID,
		ProviderID:           d.ProviderID,
		UserName:             d.UserName,
		CustomerName:         d.CustomerName,
		ProviderName:         d.ProviderName,
		Service:              d.Service,
		CustomerRating:       d.CustomerRating,
		CustomerReview:       d.CustomerReview,
		ProviderRating:       d.ProviderRating,
		ProviderReview:       d.ProviderReview,
		UserProfileImage:     d.UserProfileImage,
		ProviderProfileImage: d.ProviderProfileImage,
		ImageURL:             d.ImageURL,
		AcceptedAt:           d.AcceptedAt,
		CompletedAt:          d.CompletedAt,
		RatedAt:              d.RatedAt,
		CreatedAt:            d.CreatedAt,
	}
}
