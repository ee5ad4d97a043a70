// ABOUTME: Tests for the engine controller
// ABOUTME: Covers lifecycle, backend switching, implicit starts and introspection
package engine

import (
	"errors"
	"runtime"
	"testing"

	"github.com/musiccreate/audiocore-go/pkg/audio"
	"github.com/musiccreate/audiocore-go/pkg/audio/backend"
)

// fakeBackend records the calls the engine makes
type fakeBackend struct {
	id        string
	available bool
	startOK   bool
	started   bool
	stopped   bool
	lastCfg   audio.Config
	played    []string
}

func (f *fakeBackend) ID() string      { return f.id }
func (f *fakeBackend) Name() string    { return "fake-" + f.id }
func (f *fakeBackend) Available() bool { return f.available }

func (f *fakeBackend) Start(cfg audio.Config) bool {
	f.lastCfg = cfg
	if !f.startOK {
		return false
	}
	f.started = true
	return true
}

func (f *fakeBackend) Stop() {
	f.started = false
	f.stopped = true
}

func (f *fakeBackend) PlayFile(path string) bool {
	if path == "" {
		return false
	}
	f.played = append(f.played, path)
	return true
}

func (f *fakeBackend) StopPlayback() bool { return true }

// fakeFactory hands out fakes and keeps a handle on the last one so tests
// can inspect what the engine did with it
type fakeFactory struct {
	available bool
	startOK   bool
	last      *fakeBackend
}

func (ff *fakeFactory) new() backend.Backend {
	ff.last = &fakeBackend{id: "winmm", available: ff.available, startOK: ff.startOK}
	return ff.last
}

// newFakeEngine wires an engine whose winmm backend is the controllable fake
// and whose auto default points at it
func newFakeEngine(available, startOK bool) (*Engine, *fakeFactory) {
	factory := &fakeFactory{available: available, startOK: startOK}
	reg := backend.NewRegistry()
	reg.Register("winmm", factory.new)
	reg.SetDefault("winmm")
	return NewWithRegistry(reg), factory
}

func TestStartRejectsInvalidConfig(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	err := e.Start(audio.Config{SampleRate: 0, BufferSize: 256})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero sample rate, got %v", err)
	}

	err = e.Start(audio.Config{SampleRate: 48000, BufferSize: 0})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero buffer size, got %v", err)
	}

	if e.IsRunning() {
		t.Error("engine must not be running after a rejected Start")
	}
}

func TestStartStopLifecycle(t *testing.T) {
	e, factory := newFakeEngine(true, true)

	cfg := audio.Config{SampleRate: 44100, BufferSize: 512}
	if err := e.Start(cfg); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if !e.IsRunning() {
		t.Error("engine should be running after Start")
	}

	if factory.last == nil || !factory.last.started {
		t.Fatal("backend should have been started")
	}

	if factory.last.lastCfg != cfg {
		t.Errorf("backend received config %+v, want %+v", factory.last.lastCfg, cfg)
	}

	e.Stop()
	if e.IsRunning() {
		t.Error("engine should not be running after Stop")
	}
	if !factory.last.stopped {
		t.Error("backend should have been stopped")
	}

	// Stop is idempotent
	e.Stop()
	if e.IsRunning() {
		t.Error("second Stop should leave the engine stopped")
	}
}

func TestStopBeforeAnyStart(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	e.Stop()
	if e.IsRunning() {
		t.Error("Stop without a prior Start should leave the engine stopped")
	}
}

func TestStartWithUnavailableBackend(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	if !e.SetBackend("juce") {
		t.Fatal("juce should be a recognized identifier")
	}

	err := e.Start(audio.DefaultConfig())
	if !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("expected ErrBackendUnavailable, got %v", err)
	}

	if e.IsRunning() {
		t.Error("engine must not be running after a failed Start")
	}
}

func TestStartWithRefusingBackend(t *testing.T) {
	e, _ := newFakeEngine(true, false)

	err := e.Start(audio.DefaultConfig())
	if !errors.Is(err, ErrStartFailed) {
		t.Errorf("expected ErrStartFailed, got %v", err)
	}

	if e.IsRunning() {
		t.Error("engine must not be running when the backend refuses to start")
	}
}

func TestSetBackendNormalizesCase(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	if !e.SetBackend("AUTO") {
		t.Error("SetBackend(AUTO) should succeed")
	}

	if !e.SetBackend("WinMM") {
		t.Error("SetBackend(WinMM) should succeed")
	}

	if e.BackendID() != "winmm" {
		t.Errorf("expected selection to normalize to winmm, got %s", e.BackendID())
	}
}

func TestSetBackendRejectsUnknown(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	if !e.SetBackend("juce") {
		t.Fatal("juce should be accepted")
	}

	if e.SetBackend("bogus") {
		t.Error("SetBackend(bogus) should fail")
	}

	if e.selectedID != "juce" {
		t.Errorf("rejected SetBackend must not change the selection, got %s", e.selectedID)
	}
}

func TestSetBackendStopsRunningEngine(t *testing.T) {
	e, factory := newFakeEngine(true, true)

	if err := e.Start(audio.DefaultConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if !e.SetBackend("juce") {
		t.Fatal("SetBackend(juce) should succeed")
	}

	if e.IsRunning() {
		t.Error("SetBackend while running should stop the engine")
	}

	if !factory.last.stopped {
		t.Error("previous backend should have been stopped before the switch")
	}

	if e.backend != nil {
		t.Error("active backend should be discarded on switch")
	}

	if e.nameCache != nameUninitialized {
		t.Errorf("name cache should be %q after a switch, got %q", nameUninitialized, e.nameCache)
	}
}

func TestPlayFileRejectsEmptyPath(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	if e.PlayFile("") {
		t.Error("PlayFile with empty path should fail")
	}

	if e.IsRunning() {
		t.Error("rejected PlayFile must not alter run state")
	}
}

func TestPlayFileImplicitStartWithDefaultConfig(t *testing.T) {
	e, factory := newFakeEngine(true, true)

	if !e.PlayFile("song.wav") {
		t.Fatal("PlayFile should succeed")
	}

	if !e.IsRunning() {
		t.Error("PlayFile should have started the engine implicitly")
	}

	if factory.last.lastCfg != audio.DefaultConfig() {
		t.Errorf("implicit start should use the default config, got %+v", factory.last.lastCfg)
	}

	if len(factory.last.played) != 1 || factory.last.played[0] != "song.wav" {
		t.Errorf("backend should have received the play request, got %v", factory.last.played)
	}
}

func TestPlayFileImplicitStartReusesLastConfig(t *testing.T) {
	e, factory := newFakeEngine(true, true)

	cfg := audio.Config{SampleRate: 44100, BufferSize: 1024}
	if err := e.Start(cfg); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	e.Stop()

	if !e.PlayFile("song.wav") {
		t.Fatal("PlayFile should succeed")
	}

	if factory.last.lastCfg != cfg {
		t.Errorf("implicit start should reuse the last config %+v, got %+v", cfg, factory.last.lastCfg)
	}
}

func TestPlayFileAbsorbsImplicitStartFailure(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	if !e.SetBackend("juce") {
		t.Fatal("SetBackend(juce) should succeed")
	}

	if e.PlayFile("song.wav") {
		t.Error("PlayFile should fail when the implicit start cannot succeed")
	}

	if e.IsRunning() {
		t.Error("engine must stay stopped after an absorbed start failure")
	}
}

func TestStopPlaybackDelegates(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	if !e.StopPlayback() {
		t.Error("StopPlayback should delegate to a resolvable backend")
	}
}

func TestStopPlaybackWithoutResolvableBackend(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	if !e.SetBackend("juce") {
		t.Fatal("SetBackend(juce) should succeed")
	}

	if e.StopPlayback() {
		t.Error("StopPlayback should fail when no usable backend resolves")
	}
}

func TestIsBackendAvailable(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	if e.IsBackendAvailable("juce") {
		t.Error("placeholder must never be available")
	}

	if !e.IsBackendAvailable("winmm") {
		t.Error("fake winmm should be available")
	}

	if !e.IsBackendAvailable("WINMM") {
		t.Error("availability query should be case-insensitive")
	}

	if e.IsBackendAvailable("bogus") {
		t.Error("unknown identifier must not be available")
	}

	// Pure query: must not create or replace the active backend
	if e.backend != nil {
		t.Error("availability query must not touch the active backend")
	}
}

func TestIntrospectionBeforeAnyStart(t *testing.T) {
	// Real registry: on Windows auto resolves winmm, elsewhere it falls
	// back to the placeholder
	e := New()

	wantID := "juce"
	if runtime.GOOS == "windows" {
		wantID = "winmm"
	}

	if got := e.BackendID(); got != wantID {
		t.Errorf("expected BackendID %q on %s, got %q", wantID, runtime.GOOS, got)
	}

	if e.BackendName() == "" {
		t.Error("BackendName must never be empty")
	}
}

func TestIntrospectionFallbackWhenNothingResolves(t *testing.T) {
	reg := backend.NewRegistry()
	reg.Register("juce", func() backend.Backend { return nil })
	reg.Register("winmm", func() backend.Backend { return nil })
	e := NewWithRegistry(reg)

	if got := e.BackendName(); got != nameUnavailable {
		t.Errorf("expected %q, got %q", nameUnavailable, got)
	}

	if got := e.BackendID(); got != backend.Auto {
		t.Errorf("expected the selected id %q, got %q", backend.Auto, got)
	}

	if err := e.Start(audio.DefaultConfig()); !errors.Is(err, ErrBackendUnavailable) {
		t.Errorf("expected ErrBackendUnavailable, got %v", err)
	}

	if e.StopPlayback() {
		t.Error("StopPlayback should fail when nothing resolves")
	}
}

func TestAutoResolutionFallsBackToPlaceholder(t *testing.T) {
	factory := &fakeFactory{available: false, startOK: false}
	reg := backend.NewRegistry()
	reg.Register("winmm", factory.new)
	reg.SetDefault("winmm")
	e := NewWithRegistry(reg)

	if got := e.BackendID(); got != "juce" {
		t.Errorf("auto should fall back to the placeholder id, got %q", got)
	}
}

func TestIntrospectionReportsLiveBackend(t *testing.T) {
	e, _ := newFakeEngine(true, true)

	if err := e.Start(audio.DefaultConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if got := e.BackendID(); got != "winmm" {
		t.Errorf("expected live backend id winmm, got %q", got)
	}

	if got := e.BackendName(); got != "fake-winmm" {
		t.Errorf("expected live backend name, got %q", got)
	}
}
