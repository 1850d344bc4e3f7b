package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"
)

var (
	// ErrNoAdapter is returned when no compatible GPU adapter is found.
	ErrNoAdapter = errors.New("gpu: no compatible adapter found")

	// ErrNoDevice is returned when an operation needs a device and the
	// renderer was created without one.
	ErrNoDevice = errors.New("gpu: renderer has no device")
)

// GPUInfo describes the adapter a device was created on.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType gputypes.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend gputypes.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// Device owns the GPU resources a renderer presents through: instance,
// adapter, logical device, and submission queue.
type Device struct {
	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID
	info     *GPUInfo
}

// NewDevice creates a device on the best available adapter. Bring-up
// runs in order: instance, adapter, device, queue. Resources created
// before a failing step are released again.
func NewDevice() (*Device, error) {
	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}

	info := adapterInfo(adapterID)
	if info != nil {
		Logger().Info("gpu adapter selected", "gpu", info.String())
		if info.Driver != "" {
			Logger().Debug("gpu driver", "version", info.Driver)
		}
	}

	deviceID, err := core.RequestDevice(adapterID, &gputypes.DeviceDescriptor{
		Label:          "easel-device",
		RequiredLimits: gputypes.DefaultLimits(),
	})
	if err != nil {
		releaseAdapter(adapterID)
		return nil, fmt.Errorf("gpu: device creation failed: %w", err)
	}

	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		releaseDevice(deviceID)
		releaseAdapter(adapterID)
		return nil, fmt.Errorf("gpu: queue retrieval failed: %w", err)
	}

	return &Device{
		instance: instance,
		adapter:  adapterID,
		device:   deviceID,
		queue:    queueID,
		info:     info,
	}, nil
}

// Info returns details about the adapter backing the device, or nil when
// the adapter did not report any.
func (d *Device) Info() *GPUInfo {
	return d.info
}

// Close releases the device's GPU resources in reverse creation order.
// The queue is dropped with its device.
func (d *Device) Close() {
	releaseDevice(d.device)
	releaseAdapter(d.adapter)
	d.instance = nil
	d.device = core.DeviceID{}
	d.adapter = core.AdapterID{}
	d.queue = core.QueueID{}
	Logger().Debug("gpu device closed")
}

// adapterInfo queries the adapter. A query failure is not fatal; the
// device works without its description.
func adapterInfo(adapterID core.AdapterID) *GPUInfo {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		Logger().Warn("adapter info unavailable", "err", err)
		return nil
	}
	return &GPUInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
		Driver:     info.Driver,
	}
}

func releaseDevice(id core.DeviceID) {
	if id.IsZero() {
		return
	}
	if err := core.DeviceDrop(id); err != nil {
		Logger().Warn("device release failed", "err", err)
	}
}

func releaseAdapter(id core.AdapterID) {
	if id.IsZero() {
		return
	}
	if err := core.AdapterDrop(id); err != nil {
		Logger().Warn("adapter release failed", "err", err)
	}
}
