package probe

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"codeberg.org/mutker/gamectl/internal/errors"
)

const (
	ErrNVMLInit     = errors.ErrorCode("probe_nvml_init_failed")
	ErrNVMLDevice   = errors.ErrorCode("probe_nvml_device_not_found")
	ErrNVMLShutdown = errors.ErrorCode("probe_nvml_shutdown_failed")
)

// nvmlError wraps an NVML return code
type nvmlError struct {
	ret nvml.Return
}

func (e *nvmlError) Error() string {
	return nvml.ErrorString(e.ret)
}

func newNVMLError(ret nvml.Return) error {
	if ret == nvml.SUCCESS {
		return nil
	}

	return &nvmlError{ret: ret}
}

func isSuccess(ret nvml.Return) bool {
	return ret == nvml.SUCCESS
}
