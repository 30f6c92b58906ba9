package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv then clears the key so the
	// defaults apply whatever the host environment sets.
	for _, key := range []string{"PORT", "MONGO_URI", "MONGO_DB", "STRIPE_SECRET_KEY", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "toyMarketplace", cfg.MongoDB)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "toysTest")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("ALLOWED_ORIGINS", "https://toys.example.com, https://admin.example.com")

	cfg := LoadConfig()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "toysTest", cfg.MongoDB)
	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
	assert.Equal(t, []string{"https://toys.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestSplitOrigins_DropsEmptyEntries(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitOrigins("a,, b ,"))
}
