package loader

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is a self-contained module that registers its own routes.
type Feature interface {
	Name() string
	IsEnabled() bool
	Load(app fiber.Router) error
}

// Initializer is implemented by features that prepare storage before serving,
// such as running migrations or creating indexes.
type Initializer interface {
	Init(ctx context.Context) error
}

// Manager keeps the registered features in registration order.
type Manager struct {
	features []Feature
	logger   *zap.Logger
}

// NewManager creates an empty manager.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// Register adds a feature.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Features returns the registered features.
func (m *Manager) Features() []Feature {
	return m.features
}

// InitAll runs Init on every enabled feature that implements Initializer.
func (m *Manager) InitAll(ctx context.Context) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			continue
		}
		init, ok := f.(Initializer)
		if !ok {
			continue
		}
		if err := init.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize feature %s: %w", f.Name(), err)
		}
	}
	return nil
}

// LoadAll registers the routes of every enabled feature.
func (m *Manager) LoadAll(app fiber.Router) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			m.logger.Info("Feature disabled", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
		m.logger.Debug("Feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}
