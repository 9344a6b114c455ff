package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Empty(t, cfg.S3BaseEndpoint, "receipt archive disabled by default")
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", ":9999",
		"-d", "postgres://localhost/test",
		"-s", "flag-secret",
		"-t", "5",
		"-r", "120",
		"-m", "settler",
	}

	cfg := LoadConfig()

	assert.Equal(t, ":9999", cfg.EndpointAddrGRPC)
	assert.Equal(t, "postgres://localhost/test", cfg.DatabaseDSN)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 2*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, "settler", cfg.AdminUsername)
}

func TestLoadConfig_IgnoresForeignFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-z", "junk", "-a", ":7777"}

	cfg := LoadConfig()
	assert.Equal(t, ":7777", cfg.EndpointAddrGRPC)
}
