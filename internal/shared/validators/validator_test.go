package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Mongo sampleMongo `mapstructure:"mongo"`
}

type sampleMongo struct {
	URI      string `mapstructure:"uri" validate:"required"`
	Database string `validate:"required"`
}

func TestNew_ReportsMapstructureNames(t *testing.T) {
	t.Parallel()

	err := New().Struct(&sampleConfig{})
	require.Error(t, err)

	ve, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, ve, 2)
	assert.Equal(t, "sampleConfig.mongo.uri", ve[0].Namespace())
	assert.Equal(t, "sampleConfig.mongo.Database", ve[1].Namespace())
	assert.Equal(t, "required", ve[0].Tag())
}
