package provider

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	apperrors "batch-transcriber/internal/app/errors"
)

// ProviderCreator is a function that creates a provider from settings
type ProviderCreator func(settings Settings) (TranscriptionProvider, error)

// providerRegistry stores provider creation functions
var (
	providerRegistry = make(map[string]ProviderCreator)
	registryMutex    sync.RWMutex
)

// RegisterProvider registers a provider creator function
func RegisterProvider(providerType string, creator ProviderCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (ProviderCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[providerType]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrProviderNotFound, apperrors.KindConfig,
			"provider type %q not registered (available: %v)", providerType, listLocked())
	}
	return creator, nil
}

// ListRegisteredProviders returns all registered provider types, sorted
func ListRegisteredProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	return listLocked()
}

func listLocked() []string {
	providers := lo.Keys(providerRegistry)
	sort.Strings(providers)
	return providers
}

// NewProvider creates and validates the named provider.
func NewProvider(providerType string, settings Settings) (TranscriptionProvider, error) {
	creator, err := GetProviderCreator(providerType)
	if err != nil {
		return nil, err
	}

	p, err := creator(settings)
	if err != nil {
		return nil, apperrors.Ensure(err, apperrors.KindConfig, "failed to create provider "+providerType)
	}

	if err := p.ValidateConfiguration(); err != nil {
		return nil, apperrors.Ensure(err, apperrors.KindConfig, "invalid configuration for provider "+providerType)
	}
	return p, nil
}
