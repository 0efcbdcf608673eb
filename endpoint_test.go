package urlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const servicesDoc = `{
	"services": {
		"db": {"protocol": "https", "host": "db.internal", "port": 5432},
		"cache": {"protocol": "redis", "host": "cache.internal", "port": "6379"},
		"broken": {"protocol": "https", "host": "nohost.internal"}
	}
}`

func TestEndpointFromJSON_NumericPort(t *testing.T) {
	// When
	endpoint, err := EndpointFromJSON([]byte(servicesDoc), "$.services.db")

	// Then
	require.NoError(t, err)
	assert.Equal(t, &Endpoint{Protocol: "https", Host: "db.internal", Port: "5432"}, endpoint)
	assert.Equal(t, "https://db.internal:5432", endpoint.Base())
}

func TestEndpointFromJSON_StringPort(t *testing.T) {
	// When
	endpoint, err := EndpointFromJSON([]byte(servicesDoc), "$.services.cache")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "redis://cache.internal:6379", endpoint.Base())
}

func TestEndpointFromJSON_AsCandidate(t *testing.T) {
	// Given
	endpoint, err := EndpointFromJSON([]byte(servicesDoc), "$.services.db")
	require.NoError(t, err)
	builder, err := New()
	require.NoError(t, err)

	// When
	u, err := builder.Create("/stats", endpoint)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "https://db.internal:5432/stats", u.String())
}

func TestEndpointFromJSON_MissingFieldDoesNotResolve(t *testing.T) {
	// Given a descriptor with no port
	endpoint, err := EndpointFromJSON([]byte(servicesDoc), "$.services.broken")
	require.NoError(t, err)
	assert.Empty(t, endpoint.Base())

	builder, err := New(WithFallbackBase("https://fallback.example.com"))
	require.NoError(t, err)

	// When
	u, err := builder.Create("/x", endpoint)

	// Then the fallback saves it
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.example.com", u.Origin())
}

func TestEndpointFromJSON_InvalidDocument(t *testing.T) {
	// When
	_, err := EndpointFromJSON([]byte("{not json"), "$.services.db")

	// Then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing endpoint document")
}

func TestEndpointFromJSON_PathAddressesNonObject(t *testing.T) {
	// When
	_, err := EndpointFromJSON([]byte(servicesDoc), "$.services.db.host")

	// Then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected an object")
}

func TestEndpointFromJSON_UnknownPath(t *testing.T) {
	// When
	_, err := EndpointFromJSON([]byte(servicesDoc), "$.services.missing")

	// Then
	require.Error(t, err)
}
