package probe

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"codeberg.org/mutker/gamectl/internal/errors"
	"codeberg.org/mutker/gamectl/internal/logger"
)

// NVML reads VRAM usage from the first GPU through the NVML library.
// Process RAM comes from the Go runtime, same as Runtime.
type NVML struct {
	Runtime
	device nvml.Device
	log    logger.Logger
}

// NewNVML initializes NVML and resolves device 0. Callers that can run
// without a GPU should fall back to Runtime on error.
func NewNVML(log logger.Logger) (*NVML, error) {
	errFactory := errors.New()

	if log == nil {
		log = logger.Default()
	}

	if ret := nvml.Init(); !isSuccess(ret) {
		return nil, errFactory.Wrap(ErrNVMLInit, newNVMLError(ret))
	}

	device, ret := nvml.DeviceGetHandleByIndex(0)
	if !isSuccess(ret) {
		_ = nvml.Shutdown()

		return nil, errFactory.Wrap(ErrNVMLDevice, newNVMLError(ret))
	}

	if name, ret := device.GetName(); isSuccess(ret) {
		log.Debug().Str("device", name).Msg("VRAM probe attached")
	}

	return &NVML{device: device, log: log}, nil
}

// VRAMUsageMB reads used device memory. A failed read reports zero.
func (p *NVML) VRAMUsageMB() float64 {
	mem, ret := p.device.GetMemoryInfo()
	if !isSuccess(ret) {
		p.log.Debug().Str("error", nvml.ErrorString(ret)).Msg("VRAM read failed")

		return 0
	}

	return float64(mem.Used) / bytesPerMB
}

func (p *NVML) Close() error {
	errFactory := errors.New()

	if ret := nvml.Shutdown(); !isSuccess(ret) {
		return errFactory.Wrap(ErrNVMLShutdown, newNVMLError(ret))
	}

	return nil
}
