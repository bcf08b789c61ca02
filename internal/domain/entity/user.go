// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionPlan represents the billing tier a user is subscribed to.
type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "free"
	PlanBasic      SubscriptionPlan = "basic"
	PlanPremium    SubscriptionPlan = "premium"
	PlanEnterprise SubscriptionPlan = "enterprise"
)

// User represents a landlord account in the Rentfolio system.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Plan         SubscriptionPlan
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity on the free plan.
func NewUser(email, passwordHash, name string) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Plan:         PlanFree,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
