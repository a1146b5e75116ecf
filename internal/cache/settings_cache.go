package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/PedroGomesFR/myPlanning/internal/models"
)

const settingsTTL = 5 * time.Minute

// SettingsCache guarda o perfil de disponibilidade em Redis: ele é lido
// em toda consulta de slots. Com client nil o cache vira no-op, o que
// dispensa Redis em desenvolvimento e nos testes.
type SettingsCache struct {
	client *redis.Client
}

func NewSettingsCache(addr string) *SettingsCache {
	if addr == "" {
		return &SettingsCache{}
	}

	return &SettingsCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *SettingsCache) key(professionalID string) string {
	return "availability_settings:" + professionalID
}

func (c *SettingsCache) Get(ctx context.Context, professionalID string) (*models.AvailabilitySettings, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, c.key(professionalID)).Bytes()
	if err != nil {
		return nil, false
	}

	var s models.AvailabilitySettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}

	return &s, true
}

func (c *SettingsCache) Set(ctx context.Context, s *models.AvailabilitySettings) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return
	}

	c.client.Set(ctx, c.key(s.ProfessionalID), raw, settingsTTL)
}

func (c *SettingsCache) Invalidate(ctx context.Context, professionalID string) {
	if c.client == nil {
		return
	}

	c.client.Del(ctx, c.key(professionalID))
}
