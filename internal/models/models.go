package models

import "github.com/zenithlab/storefront-client/internal/domain"

// Product is a catalog entry as the API serves it. The hardware fields are
// only populated for robots; accessories carry zero values.
type Product struct {
	ProductID        int                     `json:"productId"`
	Name             string                  `json:"name"`
	Description      string                  `json:"description"`
	Price            float64                 `json:"price"`
	CategoryID       int                     `json:"categoryId"`
	Color            string                  `json:"color"`
	Stock            int                     `json:"stock"`
	ImageURL         string                  `json:"imageUrl"`
	BuyerRequirement domain.BuyerRequirement `json:"buyerRequirement"`

	AIModel       string  `json:"aiModel"`
	HeightCm      float64 `json:"heightCm"`
	WeightKg      float64 `json:"weightKg"`
	PayloadKg     float64 `json:"payloadKg"`
	BatteryHours  float64 `json:"batteryHours"`
	SpeedKmh      float64 `json:"speedKmh"`
	AutonomyLevel string  `json:"autonomyLevel"`
	WarrantyYears int     `json:"warrantyYears"`
}

type Category struct {
	CategoryID  int    `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Profile struct {
	UserID      int            `json:"userId"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	Zip         string         `json:"zip"`
	AccountType domain.Account `json:"accountType"`
}

type Order struct {
	OrderID        int             `json:"orderId"`
	UserID         int             `json:"userId"`
	Date           string          `json:"date"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Zip            string          `json:"zip"`
	ShippingAmount float64         `json:"shippingAmount"`
	OrderTotal     float64         `json:"orderTotal"`
	LineItems      []OrderLineItem `json:"lineItems,omitempty"`
}

type OrderLineItem struct {
	OrderID    int     `json:"orderId"`
	ProductID  int     `json:"productId"`
	SalesPrice float64 `json:"salesPrice"`
	Quantity   int     `json:"quantity"`
	Discount   float64 `json:"discount"`
}

type Job struct {
	JobID       int    `json:"jobId"`
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PostedDate  string `json:"postedDate"`
}

type JobApplication struct {
	ApplicationID int    `json:"applicationId,omitempty"`
	JobID         int    `json:"jobId"`
	ApplicantName string `json:"applicantName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ResumeURL     string `json:"resumeUrl"`
	CoverLetter   string `json:"coverLetter"`
	Status        string `json:"status,omitempty"`
}

type SalesInquiry struct {
	InquiryID   int    `json:"inquiryId,omitempty"`
	ProductID   int    `json:"productId"`
	ContactName string `json:"contactName"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	Status      string `json:"status,omitempty"`
}

// User is the identity payload returned by login.
type User struct {
	ID          int            `json:"id"`
	Username    string         `json:"username"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	Role        string         `json:"role"`
	AccountType domain.Account `json:"accountType"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
