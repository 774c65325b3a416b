package api

import (
	"encoding/base64"
	"fmt"
	"net"
	"strconv"

	"github.com/example/task-hub/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis/v3"
)

const (
	sessionCookieName = "task_hub_session"
	lastTaskIDKey     = "last_task_id"
)

// newSessionStore creates the session store, backed by Redis when an address is configured.
func newSessionStore(cfg config.Session) (*session.Store, error) {
	sessionCfg := session.Config{
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:" + sessionCookieName,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	}

	if cfg.RedisAddr != "" {
		host, portStr, err := net.SplitHostPort(cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("invalid session redis address %q: %w", cfg.RedisAddr, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid session redis port %q: %w", portStr, err)
		}
		sessionCfg.Storage = redis.New(redis.Config{
			Host: host,
			Port: port,
		})
	}

	return session.New(sessionCfg), nil
}

// newCookieEncryption returns the cookie encryption middleware, or nil when no key is set.
func newCookieEncryption(secretKey string) (fiber.Handler, error) {
	if secretKey == "" {
		return nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil {
		return nil, fmt.Errorf("session secret key must be base64: %w", err)
	}
	switch len(raw) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("session secret key must decode to 16, 24 or 32 bytes, got %d", len(raw))
	}
	return encryptcookie.New(encryptcookie.Config{
		Key: secretKey,
	}), nil
}
