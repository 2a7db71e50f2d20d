package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// ClientServices bundles the client services sharing one session.
type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	transform := crypto.NewCredentialTransform()
	session := &clientSession{}

	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, transform, session, logger),
		VaultService: NewClientVaultService(serverAdapter, transform, session, logger),
	}
}
