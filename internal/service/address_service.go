package service

import (
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"streetkart/internal/model"
	"streetkart/internal/repository"
)

// addressService implements AddressService.
type addressService struct {
	addressRepo repository.AddressRepository
	onChange    ChangeHook
	logger      zerolog.Logger
}

// NewAddressService creates a new address service.
func NewAddressService(
	addressRepo repository.AddressRepository,
	onChange ChangeHook,
	logger zerolog.Logger,
) AddressService {
	return &addressService{
		addressRepo: addressRepo,
		onChange:    onChange,
		logger:      logger.With().Str("service", "address").Logger(),
	}
}

// AddAddress saves an address, assigning its ID. When the new address is
// the default, the flag is cleared on the user's other addresses before
// insertion.
func (s *addressService) AddAddress(a model.DeliveryAddress) model.DeliveryAddress {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.IsDefault {
		s.clearDefault(a.UserID)
	}

	s.addressRepo.Save(a)
	s.logger.Info().
		Str("address_id", a.ID.String()).
		Str("user_id", a.UserID).
		Bool("default", a.IsDefault).
		Msg("address added")
	s.onChange.fire()
	return a
}

// UpdateAddress replaces a saved address, keeping the single-default
// invariant. Unknown IDs are a no-op.
func (s *addressService) UpdateAddress(a model.DeliveryAddress) {
	existing := s.addressRepo.Get(a.ID)
	if existing == nil {
		s.logger.Debug().Str("address_id", a.ID.String()).Msg("update skipped, address not found")
		return
	}

	if a.IsDefault && !existing.IsDefault {
		s.clearDefault(a.UserID)
	}

	s.addressRepo.Save(a)
	s.logger.Info().Str("address_id", a.ID.String()).Msg("address updated")
	s.onChange.fire()
}

// DeleteAddress removes an address. Unknown IDs are a no-op.
func (s *addressService) DeleteAddress(id uuid.UUID) {
	s.addressRepo.Delete(id)
	s.onChange.fire()
}

// GetAddresses returns a user's addresses, default first, then by label.
func (s *addressService) GetAddresses(userID string) []model.DeliveryAddress {
	addresses := s.addressRepo.ByUser(userID)
	sort.SliceStable(addresses, func(i, j int) bool {
		if addresses[i].IsDefault != addresses[j].IsDefault {
			return addresses[i].IsDefault
		}
		return addresses[i].Label < addresses[j].Label
	})
	return addresses
}

// SetDefaultAddress makes one address the user's default, clearing the
// previous one in the same call. Addresses of other users are never
// touched.
func (s *addressService) SetDefaultAddress(userID string, id uuid.UUID) {
	target := s.addressRepo.Get(id)
	if target == nil || target.UserID != userID {
		s.logger.Debug().
			Str("address_id", id.String()).
			Str("user_id", userID).
			Msg("set default skipped, address not found for user")
		return
	}

	s.clearDefault(userID)
	target.IsDefault = true
	s.addressRepo.Save(*target)

	s.logger.Info().
		Str("address_id", id.String()).
		Str("user_id", userID).
		Msg("default address set")
	s.onChange.fire()
}

// clearDefault drops the default flag on every address the user owns.
func (s *addressService) clearDefault(userID string) {
	for _, a := range s.addressRepo.ByUser(userID) {
		if a.IsDefault {
			a.IsDefault = false
			s.addressRepo.Save(a)
		}
	}
}
