package permission

import (
	"fmt"

	"deskd/internal/shared/logger"
)

// InitDefaultPolicies seeds the role policies the API relies on. AddPolicy
// is idempotent for existing rules, so this is safe to run on every boot.
func InitDefaultPolicies(enforcer *Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin permissions, full control over routing and configuration
		{"admin", "routing_rule", "create"},
		{"admin", "routing_rule", "read"},
		{"admin", "routing_rule", "update"},
		{"admin", "routing_rule", "delete"},
		{"admin", "custom_field", "create"},
		{"admin", "custom_field", "update"},
		{"admin", "custom_field", "delete"},
		{"admin", "team", "create"},
		{"admin", "team", "update"},
		{"admin", "team", "delete"},
		{"admin", "ticket", "delete"},
		{"admin", "stats", "read"},

		// Agent permissions, day to day ticket handling
		{"agent", "routing_rule", "read"},
		{"agent", "ticket", "assign"},
		{"agent", "stats", "read"},
	}

	for _, policy := range policies {
		if err := enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Info("default permissions initialized")
	return nil
}
