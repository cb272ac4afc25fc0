package capture

import "testing"

func TestNewCamera_Defaults(t *testing.T) {
	cam := NewCamera(0, 0, 0)

	if cam == nil {
		t.Fatal("NewCamera returned nil")
	}
	if got := cam.FPS(); got != DefaultFPS {
		t.Errorf("FPS() = %d, want default %d", got, DefaultFPS)
	}
	if cam.IsOpen() {
		t.Error("camera should not report open before Open()")
	}

	impl := cam.(*cameraImpl)
	if impl.width != DefaultWidth || impl.height != DefaultHeight {
		t.Errorf("resolution = %dx%d, want defaults %dx%d",
			impl.width, impl.height, DefaultWidth, DefaultHeight)
	}
}

func TestNewCamera_RequestedResolution(t *testing.T) {
	cam := NewCamera(1, 640, 480).(*cameraImpl)

	if cam.width != 640 || cam.height != 480 {
		t.Errorf("resolution = %dx%d, want 640x480", cam.width, cam.height)
	}
}

func TestCamera_SetFPS(t *testing.T) {
	cam := NewCamera(0, 0, 0)

	cam.SetFPS(15)
	if got := cam.FPS(); got != 15 {
		t.Errorf("FPS() = %d, want 15", got)
	}

	// Non-positive values are ignored
	cam.SetFPS(0)
	cam.SetFPS(-5)
	if got := cam.FPS(); got != 15 {
		t.Errorf("FPS() after invalid sets = %d, want 15", got)
	}
}

func TestCamera_ReadFrameNotOpen(t *testing.T) {
	cam := NewCamera(0, 0, 0)

	if _, err := cam.ReadFrame(); err != ErrCameraNotOpen {
		t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestCamera_CloseWithoutOpen(t *testing.T) {
	cam := NewCamera(0, 0, 0)

	if err := cam.Close(); err != nil {
		t.Errorf("Close() on unopened camera error = %v, want nil", err)
	}
}
