package domain

import "time"

// ServiceRequestStatus enumerates review states of a service request.
type ServiceRequestStatus string

const (
	ServiceRequestPending   ServiceRequestStatus = "pending"
	ServiceRequestReviewing ServiceRequestStatus = "reviewing"
	ServiceRequestApproved  ServiceRequestStatus = "approved"
	ServiceRequestRejected  ServiceRequestStatus = "rejected"
)

// ServiceRequest mirrors the service_requests table. No route reads or writes it yet.
type ServiceRequest struct {
	ID          string               `json:"id"`
	FirstName   string               `json:"first_name"`
	LastName    string               `json:"last_name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	City        string               `json:"city"`
	ProjectType string               `json:"project_type"`
	Description string               `json:"description"`
	Timeline    string               `json:"timeline"`
	BudgetRange string               `json:"budget_range"`
	Status      ServiceRequestStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}
