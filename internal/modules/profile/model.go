package profile

// PaymentType enumerates the supported payment method kinds.
type PaymentType string

const (
	PaymentCard    PaymentType = "card"
	PaymentBank    PaymentType = "bank"
	PaymentEwallet PaymentType = "ewallet"
)

// DeliveryAddress is a saved shipping destination. At most one address has
// IsDefault set; SetDefaultAddress is the only operation enforcing that.
type DeliveryAddress struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	IsDefault bool   `json:"is_default"`
}

// PaymentMethod is a saved payment option with the same single-default
// invariant as addresses.
type PaymentMethod struct {
	ID        string      `json:"id"`
	Type      PaymentType `json:"type"`
	Name      string      `json:"name"`
	Details   string      `json:"details"`
	IsDefault bool        `json:"is_default"`
}

// UserProfile holds the shopper's contact details.
type UserProfile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`
}

// Settings is the app preference bag.
type Settings struct {
	Notifications      bool   `json:"notifications"`
	EmailNotifications bool   `json:"email_notifications"`
	OrderUpdates       bool   `json:"order_updates"`
	Promotions         bool   `json:"promotions"`
	Language           string `json:"language"`
	Theme              string `json:"theme"` // light | dark | auto
}

// State is the full profile payload persisted as one blob.
type State struct {
	Profile        UserProfile       `json:"profile"`
	Addresses      []DeliveryAddress `json:"addresses"`
	PaymentMethods []PaymentMethod   `json:"payment_methods"`
	Settings       Settings          `json:"settings"`
}

// Patch structs carry partial updates; nil fields are left untouched.
// IsDefault is deliberately absent: SetDefault* is the only way to move a
// default, which is what keeps the single-default invariant intact.

type ProfilePatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

type AddressPatch struct {
	Label   *string `json:"label,omitempty"`
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type PaymentPatch struct {
	Type    *PaymentType `json:"type,omitempty"`
	Name    *string      `json:"name,omitempty"`
	Details *string      `json:"details,omitempty"`
}

type SettingsPatch struct {
	Notifications      *bool   `json:"notifications,omitempty"`
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	OrderUpdates       *bool   `json:"order_updates,omitempty"`
	Promotions         *bool   `json:"promotions,omitempty"`
	Language           *string `json:"language,omitempty"`
	Theme              *string `json:"theme,omitempty"`
}
