package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"cinebook-tui/model"
)

const appDirName = "cinebook-tui"

// BookingStore persists booking histories as one JSON file per user
// email under the user config directory. Writes are whole-value
// overwrites of the full list; there are no partial updates.
type BookingStore struct{}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

// Load reads the booking list for a user. A missing file is an empty
// history, not an error.
func (s *BookingStore) Load(email string) ([]model.Booking, error) {
	path, err := configPath(bookingsFileName(email))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, errors.New("invalid booking history format")
	}
	return bookings, nil
}

// Save overwrites the booking list for a user.
func (s *BookingStore) Save(email string, bookings []model.Booking) error {
	path, err := configPath(bookingsFileName(email))
	if err != nil {
		return err
	}
	return writeJSON(path, bookings)
}

func bookingsFileName(email string) string {
	return "bookings_" + sanitizeKey(email) + ".json"
}

// sanitizeKey makes an email safe to use as a file name component.
func sanitizeKey(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	var b strings.Builder
	for _, r := range email {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// LoadCurrentUser returns the remembered signed-in user, or false when
// nobody is stored.
func LoadCurrentUser() (model.User, bool, error) {
	path, err := configPath("current_user.json")
	if err != nil {
		return model.User{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.User{}, false, nil
		}
		return model.User{}, false, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return model.User{}, false, errors.New("invalid current user format")
	}
	if strings.TrimSpace(user.Email) == "" {
		return model.User{}, false, nil
	}
	return user, true, nil
}

// SaveCurrentUser remembers the signed-in user across runs.
func SaveCurrentUser(user model.User) error {
	path, err := configPath("current_user.json")
	if err != nil {
		return err
	}
	return writeJSON(path, user)
}

// ClearCurrentUser forgets the remembered user on sign-out.
func ClearCurrentUser() error {
	path, err := configPath("current_user.json")
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func writeJSON(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}
