package service

import "context"

// LeadEvent notifies association staff that a contact enquiry arrived.
type LeadEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	EnquiryID     string `json:"enquiry_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Message       string `json:"message"`
	ResidenceID   string `json:"residence_id,omitempty"`
	ResidenceName string `json:"residence_name,omitempty"`
	ResidenceURL  string `json:"residence_url,omitempty"`
}

// LeadPublisher defines the interface for publishing lead events to a message queue.
type LeadPublisher interface {
	// PublishLeadEvent publishes a lead event for async processing.
	PublishLeadEvent(ctx context.Context, event *LeadEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
