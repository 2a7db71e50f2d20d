package service

import (
	"sync"

	"github.com/MKhiriev/go-pass-vault/models"
)

// clientSession holds the logged-in user and master password in memory.
type clientSession struct {
	mu             sync.RWMutex
	user           models.User
	masterPassword string
}

func (s *clientSession) set(user models.User, masterPassword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user, s.masterPassword = user, masterPassword
}

func (s *clientSession) clear() {
	s.set(models.User{}, "")
}

func (s *clientSession) passphrase() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.masterPassword == "" {
		return "", ErrSessionRequired
	}
	return s.masterPassword, nil
}

func (s *clientSession) current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.masterPassword != ""
}
