package models

import "gorm.io/gorm"

const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

const (
	PaymentMethodMpesa = "mpesa"
	PaymentMethodCard  = "card"
)

type Payment struct {
	gorm.Model
	ExternalReference string  `gorm:"unique;not null" json:"external_reference"`
	PhoneNumber       string  `json:"phone_number"`
	Amount            float64 `gorm:"not null" json:"amount"`
	Status            string  `gorm:"not null" json:"status"` // pending, success, failed
	PaymentType       string  `gorm:"default:tithe" json:"payment_type"`
	DonorName         string  `json:"donor_name"`
	Method            string  `gorm:"default:mpesa" json:"method"` // mpesa, card
}
