package profile

import (
	"context"

	"github.com/freshbasket/freshbasket-backend/internal/storage"
	"github.com/google/uuid"
)

const storageKey = "profile-storage"

// Store owns the shopper's profile, addresses, payment methods and settings.
// All mutations are silent no-ops on absent ids.
type Store struct {
	state *storage.State[State]
}

func NewStore(backend storage.Backend) *Store {
	return &Store{state: storage.NewState(backend, storageKey, seedState())}
}

// seedState mirrors the demo account the storefront ships with.
func seedState() State {
	return State{
		Profile: UserProfile{
			Name:  "Dexter Morgan",
			Email: "dexter@example.com",
			Phone: "+62 851 8819 0911",
		},
		Addresses: []DeliveryAddress{{
			ID:        "1",
			Label:     "Home",
			Name:      "Dexter Morgan",
			Phone:     "+62 851 8819 0911",
			Address:   "Jalan By Pass Ngurah Rai, Denpasar, Bali, 80228",
			IsDefault: true,
		}},
		PaymentMethods: []PaymentMethod{{
			ID:        "1",
			Type:      PaymentBank,
			Name:      "BCA Virtual Account",
			Details:   "**** **** **** 1234",
			IsDefault: true,
		}},
		Settings: Settings{
			Notifications:      true,
			EmailNotifications: true,
			OrderUpdates:       true,
			Promotions:         false,
			Language:           "English",
			Theme:              "light",
		},
	}
}

// Load restores the persisted profile, if any.
func (s *Store) Load(ctx context.Context) error { return s.state.Load(ctx) }

// Snapshot returns a deep copy of the whole profile state.
func (s *Store) Snapshot() State {
	var out State
	s.state.View(func(st State) {
		out = st
		out.Addresses = append([]DeliveryAddress(nil), st.Addresses...)
		out.PaymentMethods = append([]PaymentMethod(nil), st.PaymentMethods...)
	})
	return out
}

func (s *Store) Profile() UserProfile { return s.Snapshot().Profile }

func (s *Store) Addresses() []DeliveryAddress { return s.Snapshot().Addresses }

func (s *Store) PaymentMethods() []PaymentMethod { return s.Snapshot().PaymentMethods }

func (s *Store) Settings() Settings { return s.Snapshot().Settings }

// DefaultAddress returns the default address, falling back to the first one.
// ok is false when no addresses exist at all.
func (s *Store) DefaultAddress() (DeliveryAddress, bool) {
	addresses := s.Addresses()
	if len(addresses) == 0 {
		return DeliveryAddress{}, false
	}
	for _, a := range addresses {
		if a.IsDefault {
			return a, true
		}
	}
	return addresses[0], true
}

// UpdateProfile merges non-nil patch fields into the profile.
func (s *Store) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	return s.state.Update(ctx, func(st State) State {
		if patch.Name != nil {
			st.Profile.Name = *patch.Name
		}
		if patch.Email != nil {
			st.Profile.Email = *patch.Email
		}
		if patch.Phone != nil {
			st.Profile.Phone = *patch.Phone
		}
		if patch.Avatar != nil {
			st.Profile.Avatar = *patch.Avatar
		}
		return st
	})
}

// AddAddress assigns a fresh id and appends. The caller decides whether to
// follow up with SetDefaultAddress.
func (s *Store) AddAddress(ctx context.Context, a DeliveryAddress) (DeliveryAddress, error) {
	a.ID = uuid.NewString()
	err := s.state.Update(ctx, func(st State) State {
		st.Addresses = append(append([]DeliveryAddress(nil), st.Addresses...), a)
		return st
	})
	return a, err
}

// UpdateAddress merges non-nil patch fields into the matching address.
func (s *Store) UpdateAddress(ctx context.Context, id string, patch AddressPatch) error {
	return s.state.Update(ctx, func(st State) State {
		addresses := append([]DeliveryAddress(nil), st.Addresses...)
		for i := range addresses {
			if addresses[i].ID != id {
				continue
			}
			if patch.Label != nil {
				addresses[i].Label = *patch.Label
			}
			if patch.Name != nil {
				addresses[i].Name = *patch.Name
			}
			if patch.Phone != nil {
				addresses[i].Phone = *patch.Phone
			}
			if patch.Address != nil {
				addresses[i].Address = *patch.Address
			}
		}
		st.Addresses = addresses
		return st
	})
}

// DeleteAddress removes the matching address. If it was the default, no new
// default is assigned; the collection may be left with zero defaults.
func (s *Store) DeleteAddress(ctx context.Context, id string) error {
	return s.state.Update(ctx, func(st State) State {
		var kept []DeliveryAddress
		for _, a := range st.Addresses {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		st.Addresses = kept
		return st
	})
}

// SetDefaultAddress marks the matching address as default and every other
// one as not. An absent id clears all defaults.
func (s *Store) SetDefaultAddress(ctx context.Context, id string) error {
	return s.state.Update(ctx, func(st State) State {
		addresses := append([]DeliveryAddress(nil), st.Addresses...)
		for i := range addresses {
			addresses[i].IsDefault = addresses[i].ID == id
		}
		st.Addresses = addresses
		return st
	})
}

// AddPaymentMethod assigns a fresh id and appends.
func (s *Store) AddPaymentMethod(ctx context.Context, m PaymentMethod) (PaymentMethod, error) {
	m.ID = uuid.NewString()
	err := s.state.Update(ctx, func(st State) State {
		st.PaymentMethods = append(append([]PaymentMethod(nil), st.PaymentMethods...), m)
		return st
	})
	return m, err
}

// UpdatePaymentMethod merges non-nil patch fields into the matching method.
func (s *Store) UpdatePaymentMethod(ctx context.Context, id string, patch PaymentPatch) error {
	return s.state.Update(ctx, func(st State) State {
		methods := append([]PaymentMethod(nil), st.PaymentMethods...)
		for i := range methods {
			if methods[i].ID != id {
				continue
			}
			if patch.Type != nil {
				methods[i].Type = *patch.Type
			}
			if patch.Name != nil {
				methods[i].Name = *patch.Name
			}
			if patch.Details != nil {
				methods[i].Details = *patch.Details
			}
		}
		st.PaymentMethods = methods
		return st
	})
}

// DeletePaymentMethod removes the matching method without reassigning a
// default, same as DeleteAddress.
func (s *Store) DeletePaymentMethod(ctx context.Context, id string) error {
	return s.state.Update(ctx, func(st State) State {
		var kept []PaymentMethod
		for _, m := range st.PaymentMethods {
			if m.ID != id {
				kept = append(kept, m)
			}
		}
		st.PaymentMethods = kept
		return st
	})
}

// SetDefaultPaymentMethod marks the matching method as default and every
// other one as not.
func (s *Store) SetDefaultPaymentMethod(ctx context.Context, id string) error {
	return s.state.Update(ctx, func(st State) State {
		methods := append([]PaymentMethod(nil), st.PaymentMethods...)
		for i := range methods {
			methods[i].IsDefault = methods[i].ID == id
		}
		st.PaymentMethods = methods
		return st
	})
}

// UpdateSettings merges non-nil patch fields into the settings bag.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) error {
	return s.state.Update(ctx, func(st State) State {
		if patch.Notifications != nil {
			st.Settings.Notifications = *patch.Notifications
		}
		if patch.EmailNotifications != nil {
			st.Settings.EmailNotifications = *patch.EmailNotifications
		}
		if patch.OrderUpdates != nil {
			st.Settings.OrderUpdates = *patch.OrderUpdates
		}
		if patch.Promotions != nil {
			st.Settings.Promotions = *patch.Promotions
		}
		if patch.Language != nil {
			st.Settings.Language = *patch.Language
		}
		if patch.Theme != nil {
			st.Settings.Theme = *patch.Theme
		}
		return st
	})
}
