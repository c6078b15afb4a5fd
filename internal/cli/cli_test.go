package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/eagleviewent/go-utilities/internal/cli"
	"github.com/eagleviewent/go-utilities/money"
	"github.com/eagleviewent/go-utilities/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, cfg *cli.Config, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := cli.NewRootCommand(cfg, zap.NewNop())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func defaultConfig() *cli.Config {
	return &cli.Config{
		DefaultCurrency: "USD",
		Mask:            cli.MaskConfig{Visible: 4, Total: 8},
	}
}

func TestRoutingCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, defaultConfig(), "routing", "021000021")
	require.NoError(t, err)
	assert.Equal(t, "021000021\n", out)

	out, err = execute(t, defaultConfig(), "routing", "021000021", "--secured")
	require.NoError(t, err)
	assert.Equal(t, "****0021\n", out)

	_, err = execute(t, defaultConfig(), "routing", "123456789")
	assert.True(t, errors.Is(err, errors.ErrInvalidValue))

	_, err = execute(t, defaultConfig(), "routing")
	assert.Error(t, err)
}

func TestMicrCommand(t *testing.T) {
	t.Parallel()

	t.Run("Parse", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, defaultConfig(), "micr", "parse", "@021000021@123456789+1001")
		require.NoError(t, err)

		var fields map[string]any

		require.NoError(t, json.Unmarshal([]byte(out), &fields))
		assert.Equal(t, "021000021", fields["routing_number"])
		assert.Equal(t, "123456789", fields["account_number"])
		assert.Equal(t, "1001", fields["check_number"])
		assert.Equal(t, true, fields["valid"])
	})

	t.Run("ParseInvalid", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, defaultConfig(), "micr", "parse", "021000021 123456789")
		assert.True(t, errors.Is(err, errors.ErrInvalidValue))
	})

	t.Run("Format", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, defaultConfig(),
			"micr", "format", "--routing", "021000021", "--account", "123456789", "--check", "1001")
		require.NoError(t, err)
		assert.Equal(t, "@021000021@123456789+1001\n", out)

		out, err = execute(t, defaultConfig(),
			"micr", "format", "--routing", "021000021", "--account", "123456789")
		require.NoError(t, err)
		assert.Equal(t, "@021000021@123456789\n", out)
	})

	t.Run("FormatMissingFlag", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, defaultConfig(), "micr", "format", "--routing", "021000021")
		assert.Error(t, err)
	})
}

func TestMoneySplitCommand(t *testing.T) {
	t.Parallel()

	t.Run("Cents", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, defaultConfig(), "money", "split", "10.00", "3")
		require.NoError(t, err)
		assert.Equal(t, "$3.34 USD\n$3.33 USD\n$3.33 USD\n", out)
	})

	t.Run("WholeDollar", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, defaultConfig(), "money", "split", "10.75", "3", "--whole-dollar")
		require.NoError(t, err)
		assert.Equal(t, "$4.00 USD\n$3.00 USD\n$3.00 USD\n", out)
	})

	t.Run("Currency", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, defaultConfig(), "money", "split", "1.00", "2", "--currency", "gbp")
		require.NoError(t, err)
		assert.Equal(t, "£0.50 GBP\n£0.50 GBP\n", out)

		cfg := defaultConfig()
		cfg.DefaultCurrency = "GBP"

		out, err = execute(t, cfg, "money", "split", "1.00", "2")
		require.NoError(t, err)
		assert.Equal(t, "£0.50 GBP\n£0.50 GBP\n", out)
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, defaultConfig(), "money", "split", "10", "0")
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument))

		_, err = execute(t, defaultConfig(), "money", "split", "10", "x")
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument))

		_, err = execute(t, defaultConfig(), "money", "split", "ten", "2")
		assert.True(t, errors.Is(err, errors.ErrInvalidValue))

		_, err = execute(t, defaultConfig(), "money", "split", "10", "2", "--currency", "XYZ")
		assert.True(t, errors.Is(err, errors.ErrInvalidValue))
	})
}

func TestMaskCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, defaultConfig(), "mask", "123456789")
	require.NoError(t, err)
	assert.Equal(t, "****6789\n", out)

	out, err = execute(t, defaultConfig(), "mask", "123456789", "--visible", "2", "--total", "6")
	require.NoError(t, err)
	assert.Equal(t, "****89\n", out)

	out, err = execute(t, nil, "mask", "123456789")
	require.NoError(t, err)
	assert.Equal(t, "****6789\n", out)

	_, err = execute(t, defaultConfig(), "mask", "123")
	assert.True(t, errors.Is(err, errors.ErrInvalidOperation))

	_, err = execute(t, defaultConfig(), "mask", "123456789", "--visible=-1")
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}

func TestGUIDCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, defaultConfig(), "guid")
	require.NoError(t, err)

	id, err := uuid.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	out, err = execute(t, defaultConfig(), "guid", "--ordered")
	require.NoError(t, err)

	id, err = uuid.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, byte(7), id.Version())
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := cli.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "USD", cfg.DefaultCurrency)
		assert.Equal(t, 4, cfg.Mask.Visible)
		assert.Equal(t, 8, cfg.Mask.Total)

		c, err := cfg.Currency()
		require.NoError(t, err)
		assert.Equal(t, money.USD, c)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("EVE_LOG_LEVEL", "debug")
		t.Setenv("EVE_DEFAULT_CURRENCY", "EUR")
		t.Setenv("EVE_MASK_VISIBLE", "2")

		cfg, err := cli.LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "EUR", cfg.DefaultCurrency)
		assert.Equal(t, 2, cfg.Mask.Visible)
		assert.Equal(t, 8, cfg.Mask.Total)
	})

	t.Run("Invalid", func(t *testing.T) {
		for key, value := range map[string]string{
			"EVE_LOG_FORMAT":       "xml",
			"EVE_LOG_LEVEL":        "loud",
			"EVE_DEFAULT_CURRENCY": "XYZ",
			"EVE_MASK_VISIBLE":     "-1",
		} {
			t.Run(key, func(t *testing.T) {
				t.Setenv(key, value)

				_, err := cli.LoadConfig(t.TempDir())
				assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
			})
		}
	})

	t.Run("DotEnv", func(t *testing.T) {
		dir := t.TempDir()

		// Registered so the value loaded from .env is cleared afterwards.
		t.Setenv("EVE_MASK_TOTAL", "")
		require.NoError(t, os.Unsetenv("EVE_MASK_TOTAL"))

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EVE_MASK_TOTAL=12\n"), 0o600))

		cfg, err := cli.LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.Mask.Total)
	})
}
