package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"baseUrl":      "",
			"submitOrders": false,
		},
		"secretStore": map[string]any{
			"provider": "file",
			"redis": map[string]any{
				"keyPrefix": "",
			},
		},
	}

	cases := map[string]string{
		"STORE_BASEURL":              "store.baseUrl",
		"STORE_SUBMITORDERS":         "store.submitOrders",
		"SECRETSTORE_PROVIDER":       "secretStore.provider",
		"SECRETSTORE_REDIS_KEYPREFIX": "secretStore.redis.keyPrefix",
	}

	for rawKey, want := range cases {
		if got := canonicalizeEnvKey(rawKey, existing); got != want {
			t.Errorf("canonicalizeEnvKey(%q) = %q, want %q", rawKey, got, want)
		}
	}
}

func TestCanonicalizeEnvKey_FallsBackToLowercase(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"baseUrl": "",
		},
	}

	// Unknown segments keep their lowercased spelling.
	if got := canonicalizeEnvKey("STORE_UNKNOWN_FIELD", existing); got != "store.unknown.field" {
		t.Errorf("canonicalizeEnvKey fallback = %q, want %q", got, "store.unknown.field")
	}
	if got := canonicalizeEnvKey("BRAND_NEW", existing); got != "brand.new" {
		t.Errorf("canonicalizeEnvKey fallback = %q, want %q", got, "brand.new")
	}
}
