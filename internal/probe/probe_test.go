package probe

import (
	"testing"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/stretchr/testify/assert"

	"codeberg.org/mutker/gamectl/internal/telemetry"
)

func TestRuntimeProbe(t *testing.T) {
	var p telemetry.MemoryProbe = Runtime{}

	assert.Greater(t, p.RAMUsageMB(), 0.0)
	assert.Equal(t, 0.0, p.VRAMUsageMB())
}

func TestStaticProbe(t *testing.T) {
	var p telemetry.MemoryProbe = Static{RAM: 1024, VRAM: 2048}

	assert.Equal(t, 1024.0, p.RAMUsageMB())
	assert.Equal(t, 2048.0, p.VRAMUsageMB())
}

func TestNewNVMLErrorPassthrough(t *testing.T) {
	assert.NoError(t, newNVMLError(nvml.SUCCESS))

	err := newNVMLError(nvml.ERROR_UNINITIALIZED)
	assert.Error(t, err)
	assert.NotEmpty(t, err.Error())
}
