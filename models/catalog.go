package models

import "time"

// CatalogMeta holds the fields every catalog entity shares.
type CatalogMeta struct {
	ID            string    `bson:"id" json:"id"`
	Image         string    `bson:"image" json:"image"`
	ImagePublicID string    `bson:"imagePublicId,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

func (m *CatalogMeta) Meta() *CatalogMeta { return m }

// ContactInfo is the phone/email pair carried by hotels and cab companies.
type ContactInfo struct {
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
}

type Location struct {
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type Weather struct {
	Temperature string `bson:"temperature,omitempty" json:"temperature,omitempty"`
	Condition   string `bson:"condition,omitempty" json:"condition,omitempty"`
}

// Destination is a place travellers can visit.
type Destination struct {
	CatalogMeta `bson:",inline"`

	Name            string   `bson:"name" json:"name" validate:"required"`
	Description     string   `bson:"description" json:"description" validate:"required"`
	Location        Location `bson:"location" json:"location"`
	BestTimeToVisit string   `bson:"bestTimeToVisit,omitempty" json:"bestTimeToVisit,omitempty"`
	Attractions     []string `bson:"attractions,omitempty" json:"attractions,omitempty"`
	Weather         Weather  `bson:"weather" json:"weather"`
	AverageCost     float64  `bson:"averageCost" json:"averageCost" validate:"gte=0"`
	Rating          float64  `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
}

type RoomAvailability struct {
	Available int `bson:"available" json:"available" validate:"gte=0"`
	Total     int `bson:"total" json:"total" validate:"gte=0"`
}

// Hotel is a bookable accommodation.
type Hotel struct {
	CatalogMeta `bson:",inline"`

	Name          string           `bson:"name" json:"name" validate:"required"`
	Location      string           `bson:"location" json:"location" validate:"required"`
	DestinationID string           `bson:"destinationId,omitempty" json:"destinationId,omitempty"`
	Description   string           `bson:"description,omitempty" json:"description,omitempty"`
	PricePerNight float64          `bson:"pricePerNight" json:"pricePerNight" validate:"gte=0"`
	Rating        float64          `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	Amenities     []string         `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Rooms         RoomAvailability `bson:"rooms" json:"rooms"`
	Contact       ContactInfo      `bson:"contact" json:"contact"`
}

type VehicleType string

const (
	VehicleEconomy VehicleType = "economy"
	VehiclePremium VehicleType = "premium"
	VehicleLuxury  VehicleType = "luxury"
	VehicleVan     VehicleType = "van"
)

// Cab is a car hire offering from one company.
type Cab struct {
	CatalogMeta `bson:",inline"`

	CompanyName   string      `bson:"companyName" json:"companyName" validate:"required"`
	VehicleType   VehicleType `bson:"vehicleType" json:"vehicleType" validate:"required,oneof=economy premium luxury van"`
	PricePerKm    float64     `bson:"pricePerKm" json:"pricePerKm" validate:"gte=0"`
	PricePerHour  float64     `bson:"pricePerHour" json:"pricePerHour" validate:"gte=0"`
	Capacity      int         `bson:"capacity" json:"capacity" validate:"gt=0"`
	Rating        float64     `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	Contact       ContactInfo `bson:"contact" json:"contact"`
	AvailableCars int         `bson:"availableCars" json:"availableCars" validate:"gte=0"`
	Description   string      `bson:"description,omitempty" json:"description,omitempty"`
}

// CabFilter narrows a cab listing. Zero fields do not filter.
type CabFilter struct {
	VehicleType VehicleType
	MinPrice    *float64
	MaxPrice    *float64
}
