package services

import (
	"fmt"
	"sync"

	"inkline/pkg/inktypes"
)

// Registry manages service registration and lifecycle for Inkline services.
type Registry struct {
	mu       sync.RWMutex
	services map[string]inktypes.Service
}

// NewRegistry creates a new service registry with an empty service map.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]inktypes.Service),
	}
}

// RegisterService adds a service to the registry, returning an error if already registered.
func (r *Registry) RegisterService(service inktypes.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := service.Name()
	if _, exists := r.services[name]; exists {
		return fmt.Errorf("service %s already registered", name)
	}

	r.services[name] = service
	return nil
}

// GetService retrieves a service by name, returning an error if not found.
func (r *Registry) GetService(name string) (inktypes.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, exists := r.services[name]
	if !exists {
		return nil, fmt.Errorf("service %s not found", name)
	}

	return service, nil
}

// InitializeAll initializes all registered services.
func (r *Registry) InitializeAll() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name, service := range r.services {
		if err := service.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize service %s: %w", name, err)
		}
	}

	return nil
}

// GetAllServices returns a copy of all registered services.
func (r *Registry) GetAllServices() map[string]inktypes.Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make(map[string]inktypes.Service)
	for name, service := range r.services {
		result[name] = service
	}

	return result
}

// GlobalRegistry is the global service registry instance used throughout Inkline.
var GlobalRegistry = NewRegistry()

// globalRegistryMu protects access to the GlobalRegistry variable itself
var globalRegistryMu sync.RWMutex

// GetGlobalRegistry returns the global service registry instance in a thread-safe manner
func GetGlobalRegistry() *Registry {
	globalRegistryMu.RLock()
	defer globalRegistryMu.RUnlock()
	return GlobalRegistry
}

// SetGlobalRegistry sets the global service registry instance in a thread-safe manner
func SetGlobalRegistry(registry *Registry) {
	globalRegistryMu.Lock()
	defer globalRegistryMu.Unlock()
	GlobalRegistry = registry
}

// GetGlobalThemeService retrieves the theme service from the global registry.
func GetGlobalThemeService() (*ThemeService, error) {
	service, err := GetGlobalRegistry().GetService("theme")
	if err != nil {
		return nil, err
	}

	themeService, ok := service.(*ThemeService)
	if !ok {
		return nil, fmt.Errorf("service theme has unexpected type %T", service)
	}
	return themeService, nil
}

// GetGlobalMarkdownService retrieves the markdown service from the global registry.
func GetGlobalMarkdownService() (*MarkdownService, error) {
	service, err := GetGlobalRegistry().GetService("markdown")
	if err != nil {
		return nil, err
	}

	markdownService, ok := service.(*MarkdownService)
	if !ok {
		return nil, fmt.Errorf("service markdown has unexpected type %T", service)
	}
	return markdownService, nil
}
