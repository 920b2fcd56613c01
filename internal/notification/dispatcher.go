package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/karigar-app/admin-api/internal/customer"
	"github.com/karigar-app/admin-api/internal/provider"
	"github.com/karigar-app/admin-api/internal/push"
)

// Notification data type tags understood by the mobile clients.
const (
	TypeApproval  = "approval"
	TypeRejection = "rejection"
)

// Audience tags carried in the notification payload.
const (
	UserTypeCustomer = "customer"
	UserTypeProvider = "service_provider"
)

// NoTokenMessage is returned when the recipient never registered a device.
const NoTokenMessage = "No FCM token available"

// Result reports the outcome of one dispatch attempt. A failed dispatch is
// an expected condition surfaced to the operator as a warning; it is never
// an error and never blocks the status transition that triggered it.
type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Dispatcher resolves a device token for a user and invokes the push
// collaborator. Dispatch is at-most-once per transition: no retry, no queue.
type Dispatcher struct {
	customers customer.Repository
	providers provider.Repository
	sender    push.Sender
	logger    *slog.Logger
}

// NewDispatcher constructs a dispatcher over the two record collections.
func NewDispatcher(customers customer.Repository, providers provider.Repository, sender push.Sender, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{customers: customers, providers: providers, sender: sender, logger: logger}
}

// SendApproval notifies a user their account was approved.
func (d *Dispatcher) SendApproval(ctx context.Context, uid, name, userType string) Result {
	body := "Your account has been approved. You can now use our services."
	if userType == UserTypeProvider {
		body = "Congratulations! Your service provider account has been approved. You can now accept service requests."
	}

	return d.send(ctx, uid, "Account Approved!", body, map[string]string{
		"type":      TypeApproval,
		"userType":  userType,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// SendRejection notifies a user their account was rejected, including the
// reason when one was recorded.
func (d *Dispatcher) SendRejection(ctx context.Context, uid, name, reason string) Result {
	body := "Your account has been rejected."
	if reason != "" {
		body = fmt.Sprintf("%s Reason: %s", body, reason)
	}

	return d.send(ctx, uid, "Account Rejected", body, map[string]string{
		"type":      TypeRejection,
		"reason":    reason,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (d *Dispatcher) send(ctx context.Context, uid, title, body string, data map[string]string) Result {
	token := d.resolveToken(ctx, uid)
	if token == "" {
		d.logger.Warn("no fcm token for user", "uid", uid)
		return Result{Success: false, Message: NoTokenMessage}
	}

	msgID, err := d.sender.Send(ctx, push.Message{Token: token, Title: title, Body: body, Data: data})
	if err != nil {
		// A failed notification must never block or roll back the
		// transition that triggered it.
		d.logger.Warn("push dispatch failed", "uid", uid, "error", err)
		return Result{Success: false, Error: err.Error()}
	}

	return Result{Success: true, MessageID: msgID, Message: "Notification sent successfully"}
}

// resolveToken scans Customers then ServiceProviders for a record whose
// external id matches. Lookup failures fold into the no-token outcome.
func (d *Dispatcher) resolveToken(ctx context.Context, uid string) string {
	cust, err := d.customers.FindByUID(ctx, uid)
	if err == nil {
		return cust.FCMToken
	}
	if !errors.Is(err, customer.ErrNotFound) {
		d.logger.Warn("customer token lookup failed", "uid", uid, "error", err)
	}

	prov, err := d.providers.FindByUID(ctx, uid)
	if err == nil {
		return prov.FCMToken
	}
	if !errors.Is(err, provider.ErrNotFound) {
		d.logger.Warn("provider token lookup failed", "uid", uid, "error", err)
	}

	return ""
}
